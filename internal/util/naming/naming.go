package naming

import (
	"fmt"
	"strings"
)

// TableResourceType is the CloudFormation resource type of a protected table.
const TableResourceType = "AWS::DynamoDB::Table"

// StaticBucketOutputKey is the stack output that carries the static assets bucket URL.
const StaticBucketOutputKey = "BucketURL"

// LogicalID converts an arbitrary name into a PascalCase logical ID.
// Words are split on non-alphanumeric characters and before upper case
// letters, e.g. "my-app_staging" and "myAppStaging" both become "MyAppStaging".
func LogicalID(s string) string {
	if len(s) == 1 {
		return strings.ToUpper(s)
	}

	var b strings.Builder
	for _, word := range splitWords(s) {
		b.WriteString(strings.ToUpper(word[:1]))
		b.WriteString(strings.ToLower(word[1:]))
	}

	id := b.String()
	if id == "Get" {
		return "GetIndex"
	}
	return id
}

func splitWords(s string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
			flush()
			current.WriteByte(c)
		case (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9'):
			current.WriteByte(c)
		default:
			flush()
		}
	}
	flush()

	return words
}

// StackName returns the stack identifier for an application environment.
// A non-empty suffix names an ephemeral stack (e.g. a pull request preview)
// that lives beside the environment's main stack.
func StackName(app, env, suffix string) string {
	name := LogicalID(fmt.Sprintf("%s-%s", app, env))
	if suffix != "" {
		name += LogicalID(suffix)
	}
	return name
}

// ParameterRoots returns the parameter store paths owned by an application
// environment: its environment variables and its deployment metadata.
func ParameterRoots(app, env string) []string {
	return []string{
		fmt.Sprintf("/%s/%s", app, env),
		fmt.Sprintf("/%s/deploy", app),
	}
}

// DeployBucketParameter is the parameter that records the deployment bucket name.
func DeployBucketParameter(app string) string {
	return fmt.Sprintf("/%s/deploy/bucket", app)
}

// LogGroupPrefix is the name prefix shared by the log groups of a stack's functions.
func LogGroupPrefix(stackName string) string {
	return fmt.Sprintf("/aws/lambda/%s-", stackName)
}

// BucketFromURL extracts the bucket name from a static website URL such as
// "http://my-bucket.s3-website-us-west-2.amazonaws.com".
func BucketFromURL(url string) string {
	host := strings.TrimPrefix(url, "https://")
	host = strings.TrimPrefix(host, "http://")
	name, _, _ := strings.Cut(host, ".")
	return name
}
