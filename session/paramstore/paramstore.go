// Package paramstore reads browser session records from AWS Systems Manager
// Parameter Store. Each session is a parameter named /browser-session/<id>
// whose value is a JSON object with a live_view_url field.
package paramstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/charmbracelet/log"

	"github.com/sonnes/liveview/core"
	"github.com/sonnes/liveview/session"
)

// API is the subset of the SSM client used by Store.
type API interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// Store looks up live view URLs in Parameter Store.
type Store struct {
	Client API
}

var _ session.Store = (*Store)(nil)

// New creates a Store using the default AWS credential chain. Region and
// profile come from the environment unless overridden by optFns.
func New(ctx context.Context, optFns ...func(*config.LoadOptions) error) (*Store, error) {
	cfg, err := config.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &Store{Client: ssm.NewFromConfig(cfg)}, nil
}

// LiveViewURL implements session.Store.
func (s *Store) LiveViewURL(ctx context.Context, sessionID string) (string, error) {
	name := session.ParameterName(sessionID)

	out, err := s.Client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		var nf *types.ParameterNotFound
		if errors.As(err, &nf) {
			return "", fmt.Errorf("%w: %s not in parameter store", session.ErrNotFound, sessionID)
		}
		return "", fmt.Errorf("get parameter %s: %w", name, err)
	}
	if out.Parameter == nil {
		return "", fmt.Errorf("%w: %s", session.ErrNotFound, sessionID)
	}

	var rec core.Session
	if err := json.Unmarshal([]byte(aws.ToString(out.Parameter.Value)), &rec); err != nil {
		return "", fmt.Errorf("decode parameter %s: %w", name, err)
	}
	if rec.LiveViewURL == "" {
		return "", fmt.Errorf("%w: %s has no live_view_url", session.ErrNotFound, sessionID)
	}

	log.Debug("resolved live view url", "parameter", name)
	return rec.LiveViewURL, nil
}
