//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	cfn "github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"

	"github.com/imamik/stackrm/internal/config"
)

// staticSiteTemplate declares a website bucket exposed through the BucketURL output.
const staticSiteTemplate = `
Resources:
  StaticBucket:
    Type: AWS::S3::Bucket
    Properties:
      WebsiteConfiguration:
        IndexDocument: index.html
Outputs:
  BucketURL:
    Value: !GetAtt StaticBucket.WebsiteURL
`

// seeder creates fixtures directly through the SDK, bypassing stackrm.
type seeder struct {
	s3   *s3.Client
	ssm  *ssm.Client
	logs *cloudwatchlogs.Client
	cfn  *cfn.Client
}

func newSeeder(cfg aws.Config) *seeder {
	return &seeder{
		s3: s3.NewFromConfig(cfg, func(o *s3.Options) {
			o.UsePathStyle = cfg.BaseEndpoint != nil
		}),
		ssm:  ssm.NewFromConfig(cfg),
		logs: cloudwatchlogs.NewFromConfig(cfg),
		cfn:  cfn.NewFromConfig(cfg),
	}
}

// uniqueApp returns an app name that will not collide with earlier runs.
func uniqueApp() string {
	return fmt.Sprintf("e2e-%x", time.Now().UnixNano()&0xffffff)
}

func fastTimeouts() *config.Timeouts {
	return &config.Timeouts{
		PollInterval:          2 * time.Second,
		LogDeleteStagger:      50 * time.Millisecond,
		MaxPollAttempts:       60,
		UnlimitedPollAttempts: 999,
	}
}

func (s *seeder) bucketWithObjects(ctx context.Context, bucket string, n int) error {
	if _, err := s.s3.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(bucket)}); err != nil {
		return fmt.Errorf("create bucket %s: %w", bucket, err)
	}
	for i := 0; i < n; i++ {
		_, err := s.s3.PutObject(ctx, &s3.PutObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(fmt.Sprintf("build/asset-%04d.js", i)),
			Body:   strings.NewReader("console.log(1)"),
		})
		if err != nil {
			return fmt.Errorf("put object %d: %w", i, err)
		}
	}
	return nil
}

func (s *seeder) bucketExists(ctx context.Context, bucket string) bool {
	_, err := s.s3.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucket)})
	return err == nil
}

func (s *seeder) parameter(ctx context.Context, name, value string) error {
	_, err := s.ssm.PutParameter(ctx, &ssm.PutParameterInput{
		Name:      aws.String(name),
		Value:     aws.String(value),
		Type:      ssmtypes.ParameterTypeString,
		Overwrite: aws.Bool(true),
	})
	return err
}

func (s *seeder) parametersUnder(ctx context.Context, path string) ([]string, error) {
	var names []string
	p := ssm.NewGetParametersByPathPaginator(s.ssm, &ssm.GetParametersByPathInput{
		Path:      aws.String(path),
		Recursive: aws.Bool(true),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, param := range page.Parameters {
			names = append(names, aws.ToString(param.Name))
		}
	}
	return names, nil
}

func (s *seeder) logGroup(ctx context.Context, name string) error {
	_, err := s.logs.CreateLogGroup(ctx, &cloudwatchlogs.CreateLogGroupInput{LogGroupName: aws.String(name)})
	return err
}

func (s *seeder) logGroupsWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	out, err := s.logs.DescribeLogGroups(ctx, &cloudwatchlogs.DescribeLogGroupsInput{
		LogGroupNamePrefix: aws.String(prefix),
	})
	if err != nil {
		return nil, err
	}
	var names []string
	for _, g := range out.LogGroups {
		names = append(names, aws.ToString(g.LogGroupName))
	}
	return names, nil
}

func (s *seeder) stack(ctx context.Context, name, template string) error {
	_, err := s.cfn.CreateStack(ctx, &cfn.CreateStackInput{
		StackName:    aws.String(name),
		TemplateBody: aws.String(template),
	})
	if err != nil {
		return fmt.Errorf("create stack %s: %w", name, err)
	}
	waiter := cfn.NewStackCreateCompleteWaiter(s.cfn)
	return waiter.Wait(ctx, &cfn.DescribeStacksInput{StackName: aws.String(name)}, 5*time.Minute)
}

func (s *seeder) stackOutput(ctx context.Context, name, key string) (string, error) {
	out, err := s.cfn.DescribeStacks(ctx, &cfn.DescribeStacksInput{StackName: aws.String(name)})
	if err != nil {
		return "", err
	}
	for _, st := range out.Stacks {
		for _, o := range st.Outputs {
			if aws.ToString(o.OutputKey) == key {
				return aws.ToString(o.OutputValue), nil
			}
		}
	}
	return "", fmt.Errorf("stack %s has no output %s", name, key)
}
