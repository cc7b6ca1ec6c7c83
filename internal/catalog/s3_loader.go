package catalog

import (
	"context"
	"fmt"

	"crazy-coffee/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// objectGetter is the subset of the S3 client the loader needs.
type objectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// s3Loader implements Loader for category documents stored in AWS S3.
type s3Loader struct {
	client objectGetter
	bucket string
	prefix string
	logger zerolog.Logger
}

// NewS3Loader creates a new S3-based catalog loader. Object keys are
// prefix + "<category>.yaml".
func NewS3Loader(ctx context.Context, bucket, region, prefix string, logger zerolog.Logger) (Loader, error) {
	logger = logger.With().Str("component", "s3-catalog-loader").Logger()

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Str("prefix", prefix).
		Msg("S3 loader initialised")

	return newS3Loader(s3.NewFromConfig(cfg), bucket, prefix, logger), nil
}

func newS3Loader(client objectGetter, bucket, prefix string, logger zerolog.Logger) *s3Loader {
	return &s3Loader{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: logger,
	}
}

// Load fetches and decodes the category document from S3.
func (l *s3Loader) Load(ctx context.Context, category model.Category) ([]model.Product, error) {
	key := l.prefix + DocumentName(category)

	l.logger.Info().
		Str("bucket", l.bucket).
		Str("key", key).
		Msg("loading catalog file from S3")

	result, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		l.logger.Error().
			Err(err).
			Str("bucket", l.bucket).
			Str("key", key).
			Msg("failed to get object from S3")
		return nil, fmt.Errorf("failed to get object from S3 (bucket=%s, key=%s): %w", l.bucket, key, err)
	}
	defer result.Body.Close()

	products, err := decodeDocument(result.Body, category)
	if err != nil {
		l.logger.Error().
			Err(err).
			Str("bucket", l.bucket).
			Str("key", key).
			Msg("error reading catalog file from S3")
		return nil, fmt.Errorf("error reading catalog file from S3 %s: %w", key, err)
	}

	l.logger.Info().
		Str("bucket", l.bucket).
		Str("key", key).
		Int("products_loaded", len(products)).
		Msg("catalog file loaded successfully from S3")

	return products, nil
}

// fallbackLoader tries a primary loader, then falls back to a secondary one.
type fallbackLoader struct {
	primary   Loader
	secondary Loader
	logger    zerolog.Logger
}

// NewFallbackLoader creates a loader that tries primary first and uses
// secondary when primary is nil or fails.
func NewFallbackLoader(primary, secondary Loader, logger zerolog.Logger) Loader {
	return &fallbackLoader{
		primary:   primary,
		secondary: secondary,
		logger:    logger.With().Str("component", "fallback-loader").Logger(),
	}
}

// Load attempts the primary loader, then the secondary one.
func (l *fallbackLoader) Load(ctx context.Context, category model.Category) ([]model.Product, error) {
	if l.primary != nil {
		products, err := l.primary.Load(ctx, category)
		if err == nil {
			return products, nil
		}

		l.logger.Warn().
			Err(err).
			Str("category", string(category)).
			Msg("primary catalog source failed, falling back")
	} else {
		l.logger.Debug().Msg("no primary catalog source configured")
	}

	return l.secondary.Load(ctx, category)
}
