package publish

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/passport-scorer/scorer-ui/internal/config"
	uierrors "github.com/passport-scorer/scorer-ui/internal/errors"
)

// Client is the subset of the S3 API the publisher uses. *s3.Client
// satisfies it.
type Client interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// NewClient builds an S3 client for cfg. Credentials come from the default
// AWS chain: environment, shared config and profiles, SSO, web identity and
// instance metadata. Endpoint and PathStyle support S3-compatible stores
// such as MinIO.
func NewClient(ctx context.Context, cfg config.PublishConfig) (*s3.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, uierrors.New("E207").Wrap(err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.PathStyle
	}), nil
}
