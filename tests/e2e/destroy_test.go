//go:build e2e

package e2e

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/imamik/stackrm/internal/platform/cloudformation"
	"github.com/imamik/stackrm/internal/teardown"
	"github.com/imamik/stackrm/internal/teardown/destroy"
	"github.com/imamik/stackrm/internal/util/naming"
)

var _ = Describe("Destroy", func() {
	var (
		seed *seeder
		app  string
		req  *teardown.Request
		rep  *teardown.RecordingReporter
	)

	BeforeEach(func() {
		seed = newSeeder(awsCfg)
		app = uniqueApp()
		req = &teardown.Request{
			AppName:     app,
			Environment: teardown.EnvironmentStaging,
			Immediate:   true,
			AWS:         awsOpts,
		}
		rep = teardown.NewRecordingReporter()
	})

	run := func() (*teardown.State, error) {
		return destroy.Run(ctx, req,
			destroy.WithReporter(rep),
			destroy.WithTimeouts(fastTimeouts()),
		)
	}

	Context("when no stack was ever deployed", func() {
		var deployBucket string

		BeforeEach(func() {
			deployBucket = fmt.Sprintf("%s-deploy", app)
			stack := req.StackName()

			By("seeding a deployment bucket, parameters and log groups")
			Expect(seed.bucketWithObjects(ctx, deployBucket, 1200)).To(Succeed())
			Expect(seed.parameter(ctx, naming.DeployBucketParameter(app), deployBucket)).To(Succeed())
			for i := 0; i < 12; i++ {
				Expect(seed.parameter(ctx, fmt.Sprintf("/%s/staging/VAR_%02d", app, i), "x")).To(Succeed())
			}
			Expect(seed.logGroup(ctx, naming.LogGroupPrefix(stack)+"api")).To(Succeed())
			Expect(seed.logGroup(ctx, naming.LogGroupPrefix(stack)+"worker")).To(Succeed())
		})

		It("removes everything the app left behind", func() {
			state, err := run()
			Expect(err).NotTo(HaveOccurred())
			Expect(state.StackExists()).To(BeFalse())
			Expect(state.DeployBucket).To(Equal(deployBucket))

			Expect(seed.bucketExists(ctx, deployBucket)).To(BeFalse())
			Expect(seed.parametersUnder(ctx, "/"+app)).To(BeEmpty())
			Expect(seed.logGroupsWithPrefix(ctx, naming.LogGroupPrefix(req.StackName()))).To(BeEmpty())
			Expect(rep.Messages(teardown.LevelWarn)).To(BeEmpty())
		})

		It("is a no-op the second time", func() {
			_, err := run()
			Expect(err).NotTo(HaveOccurred())

			_, err = run()
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Context("when the stack serves a static site", func() {
		var staticBucket string

		BeforeEach(func() {
			By("creating the stack " + req.StackName())
			Expect(seed.stack(ctx, req.StackName(), staticSiteTemplate)).To(Succeed())

			url, err := seed.stackOutput(ctx, req.StackName(), naming.StaticBucketOutputKey)
			Expect(err).NotTo(HaveOccurred())
			staticBucket = naming.BucketFromURL(url)
			Expect(seed.bucketWithObjects(ctx, staticBucket, 5)).To(Succeed())
		})

		It("refuses without force and leaves the stack alone", func() {
			_, err := run()
			Expect(teardown.IsGuard(err, teardown.GuardBucketExists)).To(BeTrue())

			stack, err := cloudformation.NewClient(awsCfg).DescribeStack(ctx, req.StackName())
			Expect(err).NotTo(HaveOccurred())
			Expect(stack.Exists).To(BeTrue())
			Expect(seed.bucketExists(ctx, staticBucket)).To(BeTrue())
		})

		It("destroys the site and the stack with force", func() {
			req.Force = true

			state, err := run()
			Expect(err).NotTo(HaveOccurred())
			Expect(state.DeletionRequested).To(BeTrue())
			Expect(rep.Messages(teardown.LevelDone)).To(ConsistOf("Successfully destroyed " + req.StackName()))

			Expect(seed.bucketExists(ctx, staticBucket)).To(BeFalse())
			stack, err := cloudformation.NewClient(awsCfg).DescribeStack(ctx, req.StackName())
			Expect(err).NotTo(HaveOccurred())
			Expect(stack.Exists).To(BeFalse())
		})
	})
})
