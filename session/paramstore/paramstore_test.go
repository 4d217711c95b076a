package paramstore

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/sonnes/liveview/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSSM struct {
	params map[string]string
	err    error
	names  []string
}

func (f *fakeSSM) GetParameter(_ context.Context, in *ssm.GetParameterInput, _ ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	name := aws.ToString(in.Name)
	f.names = append(f.names, name)
	if f.err != nil {
		return nil, f.err
	}
	v, ok := f.params[name]
	if !ok {
		return nil, &types.ParameterNotFound{Message: aws.String("not found")}
	}
	return &ssm.GetParameterOutput{
		Parameter: &types.Parameter{Name: in.Name, Value: aws.String(v)},
	}, nil
}

func TestLiveViewURL(t *testing.T) {
	api := &fakeSSM{params: map[string]string{
		"/browser-session/sess-1": `{"live_view_url":"https://live.example.com/?sig=1","browser_id":"b-1"}`,
		"/browser-session/no-url": `{"browser_id":"b-2"}`,
		"/browser-session/broken": `not json`,
	}}
	s := &Store{Client: api}
	ctx := context.Background()

	url, err := s.LiveViewURL(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "https://live.example.com/?sig=1", url)
	assert.Equal(t, "/browser-session/sess-1", api.names[0])

	_, err = s.LiveViewURL(ctx, "missing")
	assert.ErrorIs(t, err, session.ErrNotFound)

	_, err = s.LiveViewURL(ctx, "no-url")
	assert.ErrorIs(t, err, session.ErrNotFound)

	_, err = s.LiveViewURL(ctx, "broken")
	require.Error(t, err)
	assert.NotErrorIs(t, err, session.ErrNotFound)
	assert.Contains(t, err.Error(), "decode parameter")
}

func TestLiveViewURLClientError(t *testing.T) {
	boom := errors.New("expired token")
	s := &Store{Client: &fakeSSM{err: boom}}

	_, err := s.LiveViewURL(context.Background(), "sess-1")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, session.ErrNotFound)
}
