package destroy

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/stackrm/internal/platform/awsconf"
	"github.com/imamik/stackrm/internal/teardown"
)

func TestNewClientsFromConfig(t *testing.T) {
	t.Parallel()
	clients := NewClientsFromConfig(aws.Config{Region: "us-east-1"})

	assert.NotNil(t, clients.Stacks)
	assert.NotNil(t, clients.Buckets)
	assert.NotNil(t, clients.Parameters)
	assert.NotNil(t, clients.LogGroups)
}

func TestNewClients_InvalidOptions(t *testing.T) {
	t.Parallel()
	_, err := NewClients(context.Background(), awsconf.Options{AccessKeyID: "AKIA"})

	var remote *teardown.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, "configure AWS clients", remote.Op)
}
