package ssm

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	getParameter        func(*ssm.GetParameterInput) (*ssm.GetParameterOutput, error)
	getParametersByPath func(*ssm.GetParametersByPathInput) (*ssm.GetParametersByPathOutput, error)
	deleteParameters    func(*ssm.DeleteParametersInput) (*ssm.DeleteParametersOutput, error)
}

func (f *fakeAPI) GetParameter(_ context.Context, in *ssm.GetParameterInput, _ ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	return f.getParameter(in)
}

func (f *fakeAPI) GetParametersByPath(_ context.Context, in *ssm.GetParametersByPathInput, _ ...func(*ssm.Options)) (*ssm.GetParametersByPathOutput, error) {
	return f.getParametersByPath(in)
}

func (f *fakeAPI) DeleteParameters(_ context.Context, in *ssm.DeleteParametersInput, _ ...func(*ssm.Options)) (*ssm.DeleteParametersOutput, error) {
	return f.deleteParameters(in)
}

func TestGetParameter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		resp      *ssm.GetParameterOutput
		err       error
		wantValue string
		wantFound bool
		wantErr   bool
	}{
		{
			name:      "found",
			resp:      &ssm.GetParameterOutput{Parameter: &types.Parameter{Value: aws.String("my-app-deploy-abc123")}},
			wantValue: "my-app-deploy-abc123",
			wantFound: true,
		},
		{name: "typed not found", err: &types.ParameterNotFound{}},
		{name: "coded not found", err: &smithy.GenericAPIError{Code: "ParameterNotFound"}},
		{name: "nil parameter", resp: &ssm.GetParameterOutput{}},
		{name: "access denied", err: &smithy.GenericAPIError{Code: "AccessDeniedException"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			api := &fakeAPI{getParameter: func(in *ssm.GetParameterInput) (*ssm.GetParameterOutput, error) {
				assert.Equal(t, "/my-app/deploy/bucket", aws.ToString(in.Name))
				assert.True(t, aws.ToBool(in.WithDecryption))
				return tt.resp, tt.err
			}}

			value, found, err := NewClientWithAPI(api).GetParameter(context.Background(), "/my-app/deploy/bucket")
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "failed to get parameter /my-app/deploy/bucket")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantValue, value)
			assert.Equal(t, tt.wantFound, found)
		})
	}
}

func TestListParametersByPath(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{getParametersByPath: func(in *ssm.GetParametersByPathInput) (*ssm.GetParametersByPathOutput, error) {
		assert.Equal(t, "/my-app/staging", aws.ToString(in.Path))
		assert.True(t, aws.ToBool(in.Recursive))
		assert.Equal(t, int32(10), aws.ToInt32(in.MaxResults))

		if in.NextToken == nil {
			return &ssm.GetParametersByPathOutput{
				Parameters: []types.Parameter{{Name: aws.String("/my-app/staging/A")}, {Name: aws.String("/my-app/staging/B")}},
				NextToken:  aws.String("t2"),
			}, nil
		}
		assert.Equal(t, "t2", *in.NextToken)
		return &ssm.GetParametersByPathOutput{
			Parameters: []types.Parameter{{Name: aws.String("/my-app/staging/nested/C")}},
		}, nil
	}}
	client := NewClientWithAPI(api)

	first, err := client.ListParametersByPath(context.Background(), "/my-app/staging", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"/my-app/staging/A", "/my-app/staging/B"}, first.Names)
	assert.Equal(t, "t2", first.NextToken)

	second, err := client.ListParametersByPath(context.Background(), "/my-app/staging", first.NextToken)
	require.NoError(t, err)
	assert.Equal(t, []string{"/my-app/staging/nested/C"}, second.Names)
	assert.Empty(t, second.NextToken)
}

func TestListParametersByPath_NotFoundIsEmpty(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{getParametersByPath: func(*ssm.GetParametersByPathInput) (*ssm.GetParametersByPathOutput, error) {
		return nil, &types.ParameterNotFound{}
	}}

	page, err := NewClientWithAPI(api).ListParametersByPath(context.Background(), "/my-app/deploy", "")
	require.NoError(t, err)
	assert.Empty(t, page.Names)
	assert.Empty(t, page.NextToken)
}

func TestListParametersByPath_Error(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{getParametersByPath: func(*ssm.GetParametersByPathInput) (*ssm.GetParametersByPathOutput, error) {
		return nil, errors.New("throttled")
	}}

	_, err := NewClientWithAPI(api).ListParametersByPath(context.Background(), "/my-app/deploy", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list parameters under /my-app/deploy")
}

func TestDeleteParameters(t *testing.T) {
	t.Parallel()

	var got []string
	api := &fakeAPI{deleteParameters: func(in *ssm.DeleteParametersInput) (*ssm.DeleteParametersOutput, error) {
		got = in.Names
		return &ssm.DeleteParametersOutput{DeletedParameters: in.Names[:1], InvalidParameters: in.Names[1:]}, nil
	}}

	require.NoError(t, NewClientWithAPI(api).DeleteParameters(context.Background(), []string{"/a", "/b"}))
	assert.Equal(t, []string{"/a", "/b"}, got)
}

func TestDeleteParameters_Limits(t *testing.T) {
	t.Parallel()

	calls := 0
	api := &fakeAPI{deleteParameters: func(*ssm.DeleteParametersInput) (*ssm.DeleteParametersOutput, error) {
		calls++
		return &ssm.DeleteParametersOutput{}, nil
	}}
	client := NewClientWithAPI(api)

	require.Error(t, client.DeleteParameters(context.Background(), nil))

	tooMany := make([]string, MaxDeleteBatch+1)
	for i := range tooMany {
		tooMany[i] = fmt.Sprintf("/p%d", i)
	}
	require.Error(t, client.DeleteParameters(context.Background(), tooMany))
	assert.Zero(t, calls)
}

func TestDeleteParameters_Error(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{deleteParameters: func(*ssm.DeleteParametersInput) (*ssm.DeleteParametersOutput, error) {
		return nil, &smithy.GenericAPIError{Code: "InternalServerError"}
	}}

	err := NewClientWithAPI(api).DeleteParameters(context.Background(), []string{"/a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete 1 parameters")
}
