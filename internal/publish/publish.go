// Package publish renders the footer variants and uploads them, together
// with the icons they reference, to an S3 bucket so static sites can embed
// the footer without running the server.
package publish

import (
	"bytes"
	"context"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	uierrors "github.com/passport-scorer/scorer-ui/internal/errors"
	"github.com/passport-scorer/scorer-ui/pkg/assets"
	"github.com/passport-scorer/scorer-ui/pkg/footer"
	"github.com/passport-scorer/scorer-ui/pkg/render"
)

// Content types of published objects.
const (
	ContentTypeHTML = "text/html; charset=utf-8"
	ContentTypeSVG  = "image/svg+xml"
	ContentTypeJSON = "application/json"
)

const (
	htmlCacheControl      = "public, max-age=300"
	assetCacheControl     = "public, max-age=86400"
	immutableCacheControl = "public, max-age=31536000, immutable"

	assetDir     = "assets"
	manifestName = "manifest.json"
)

// Variants are the footer modes published, one fragment each.
var Variants = []footer.DisplayMode{footer.ModeLight, footer.ModeDark}

// Options configures a Publisher.
type Options struct {
	// Bucket is the destination bucket. Required.
	Bucket string

	// Prefix is prepended to every key, e.g. "footer/".
	Prefix string

	// AssetBase is the URL prefix the rendered HTML uses for icons.
	// Defaults to "/assets/".
	AssetBase string

	// CommitHash is linked from the published footers.
	CommitHash string

	// ClassName is appended to the root class of the published footers.
	ClassName string

	// Fingerprint uploads icons under content-hashed names with immutable
	// caching and writes the manifest next to them.
	Fingerprint bool

	// Prune declares that stale objects under Prefix will be deleted after
	// publishing. It requires a non-empty Prefix.
	Prune bool

	// Static is the public file tree holding assets/. Required.
	Static fs.FS

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Publisher uploads pre-rendered footer fragments.
type Publisher struct {
	client   Client
	opts     Options
	logger   *slog.Logger
	renderer *render.Renderer
}

// New creates a Publisher after validating opts.
func New(client Client, opts Options) (*Publisher, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.AssetBase == "" {
		opts.AssetBase = assets.DefaultPrefix
	}
	if opts.Prefix != "" && !strings.HasSuffix(opts.Prefix, "/") {
		opts.Prefix += "/"
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Publisher{
		client:   client,
		opts:     opts,
		logger:   logger,
		renderer: render.NewRenderer(render.RendererConfig{}),
	}, nil
}

// Validate checks the options without touching the bucket: E200 without a
// bucket, E206 when pruning an empty prefix.
func (o Options) Validate() error {
	if o.Bucket == "" {
		return uierrors.New("E200").
			WithSuggestion("Pass --bucket or set SCORER_UI_S3_BUCKET")
	}
	if o.Prune && o.Prefix == "" {
		return errEmptyPrunePrefix()
	}
	return nil
}

// object is one pending upload.
type object struct {
	key          string
	body         []byte
	contentType  string
	cacheControl string
}

// Key returns the full object key for name.
func (p *Publisher) Key(name string) string {
	return p.opts.Prefix + name
}

// FragmentName returns the object name of the fragment for mode.
func FragmentName(mode footer.DisplayMode) string {
	return "footer-" + string(mode.Variant()) + ".html"
}

// Publish renders every variant and uploads the fragments and icons. It
// returns the uploaded keys in upload order. The first failure aborts.
func (p *Publisher) Publish(ctx context.Context) ([]string, error) {
	objects, err := p.plan()
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(objects))
	for _, obj := range objects {
		if err := ctx.Err(); err != nil {
			return keys, uierrors.New("E201").WithDetail("Cancelled before " + obj.key).Wrap(err)
		}

		_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:       aws.String(p.opts.Bucket),
			Key:          aws.String(obj.key),
			Body:         bytes.NewReader(obj.body),
			ContentType:  aws.String(obj.contentType),
			CacheControl: aws.String(obj.cacheControl),
		})
		if err != nil {
			return keys, uierrors.New("E201").WithDetail("Could not upload " + obj.key).Wrap(err)
		}

		p.logger.Info("uploaded", "bucket", p.opts.Bucket, "key", obj.key, "bytes", len(obj.body))
		keys = append(keys, obj.key)
	}
	return keys, nil
}

// plan builds every object Publish would upload, in upload order. Icons come
// first so a fragment is never visible before the files it references.
func (p *Publisher) plan() ([]object, error) {
	icons, manifest, err := p.iconObjects()
	if err != nil {
		return nil, err
	}

	var resolver assets.Resolver = assets.NewPassthroughResolver(p.opts.AssetBase)
	if manifest != nil {
		resolver = assets.NewResolver(manifest, p.opts.AssetBase)
	}
	f := footer.New(resolver)

	objects := icons
	for _, mode := range Variants {
		html, err := p.renderer.RenderToString(f.Render(footer.Props{
			Mode:       mode,
			ClassName:  p.opts.ClassName,
			CommitHash: p.opts.CommitHash,
		}))
		if err != nil {
			return nil, uierrors.New("E202").WithDetail("Could not render the " + string(mode) + " footer").Wrap(err)
		}
		objects = append(objects, object{
			key:          p.Key(FragmentName(mode)),
			body:         []byte(html),
			contentType:  ContentTypeHTML,
			cacheControl: htmlCacheControl,
		})
	}
	return objects, nil
}

func (p *Publisher) iconObjects() ([]object, *assets.Manifest, error) {
	if p.opts.Static == nil {
		return nil, nil, uierrors.New("E203").WithDetail("No static file tree configured")
	}

	var manifest *assets.Manifest
	if p.opts.Fingerprint {
		m, err := assets.Fingerprint(p.opts.Static, assetDir)
		if err != nil {
			return nil, nil, uierrors.New("E203").Wrap(err)
		}
		manifest = m
	}

	entries, err := fs.ReadDir(p.opts.Static, assetDir)
	if err != nil {
		return nil, nil, uierrors.New("E203").Wrap(err)
	}

	var objects []object
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".svg" {
			continue
		}
		name := entry.Name()
		data, err := fs.ReadFile(p.opts.Static, path.Join(assetDir, name))
		if err != nil {
			return nil, nil, uierrors.New("E203").WithDetail("Could not read " + name).Wrap(err)
		}

		cache := assetCacheControl
		if manifest != nil {
			name = manifest.Resolve(name)
			cache = immutableCacheControl
		}
		objects = append(objects, object{
			key:          p.Key(path.Join(assetDir, name)),
			body:         data,
			contentType:  ContentTypeSVG,
			cacheControl: cache,
		})
	}

	if manifest != nil {
		data, err := manifest.MarshalJSON()
		if err != nil {
			return nil, nil, uierrors.New("E203").Wrap(err)
		}
		objects = append(objects, object{
			key:          p.Key(path.Join(assetDir, manifestName)),
			body:         data,
			contentType:  ContentTypeJSON,
			cacheControl: htmlCacheControl,
		})
	}
	return objects, manifest, nil
}

// Stale lists the keys under the prefix that are not in keep, sorted.
func (p *Publisher) Stale(ctx context.Context, keep []string) ([]string, error) {
	wanted := make(map[string]bool, len(keep))
	for _, k := range keep {
		wanted[k] = true
	}

	var stale []string
	paginator := s3.NewListObjectsV2Paginator(p.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(p.opts.Bucket),
		Prefix: aws.String(p.opts.Prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, uierrors.New("E204").Wrap(err)
		}
		for _, obj := range page.Contents {
			if key := aws.ToString(obj.Key); key != "" && !wanted[key] {
				stale = append(stale, key)
			}
		}
	}
	sort.Strings(stale)
	return stale, nil
}

func errEmptyPrunePrefix() error {
	return uierrors.New("E206").
		WithSuggestion("Pass --prefix with the directory the footer owns, e.g. footer/")
}

// Prune deletes the stale keys under the prefix and returns them. An empty
// prefix is refused since it covers the whole bucket.
func (p *Publisher) Prune(ctx context.Context, keep []string) ([]string, error) {
	if p.opts.Prefix == "" {
		return nil, errEmptyPrunePrefix()
	}
	stale, err := p.Stale(ctx, keep)
	if err != nil {
		return nil, err
	}
	for i, key := range stale {
		_, err := p.client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(p.opts.Bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			return stale[:i], uierrors.New("E205").WithDetail("Could not delete " + key).Wrap(err)
		}
		p.logger.Info("deleted", "bucket", p.opts.Bucket, "key", key)
	}
	return stale, nil
}
