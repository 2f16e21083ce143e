package cookiegrpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	cookiemiddleware "github.com/auth0/go-cookie-middleware"
	"github.com/auth0/go-cookie-middleware/cookie"
	"github.com/auth0/go-cookie-middleware/core"
)

// SetCookieMetadataKey is the response header metadata key carrying one
// Set-Cookie value per entry.
const SetCookieMetadataKey = "set-cookie"

// CookieInterceptor provides cookie processing for gRPC servers, typically
// behind a gRPC-Gateway or grpc-web proxy that forwards HTTP cookies as
// metadata.
type CookieInterceptor struct {
	processor       *core.Processor
	factory         *cookie.Factory
	cookieExtractor CookieExtractor
	errorHandler    ErrorHandler
	excludedMethods map[string]bool
	logger          Logger

	// Internal builder for accumulating core options
	coreOpts []core.Option
}

// New creates a new gRPC cookie interceptor with the provided options.
// Without WithEncrypter values pass through unchanged.
func New(opts ...Option) (*CookieInterceptor, error) {
	interceptor := &CookieInterceptor{
		factory:         cookie.NewFactory(),
		cookieExtractor: MetadataCookieExtractor,
		errorHandler:    DefaultErrorHandler,
		excludedMethods: make(map[string]bool),
	}

	for _, opt := range opts {
		if err := opt(interceptor); err != nil {
			return nil, err
		}
	}

	processor, err := core.New(interceptor.coreOpts...)
	if err != nil {
		return nil, err
	}
	interceptor.processor = processor

	return interceptor, nil
}

// Processor returns the processor shared by all calls.
func (i *CookieInterceptor) Processor() *core.Processor {
	return i.processor
}

// UnaryServerInterceptor returns a grpc.UnaryServerInterceptor that decodes
// incoming cookies into the context and sends the outgoing collection as
// header metadata once the handler returns.
func (i *CookieInterceptor) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		if i.excludedMethods[info.FullMethod] {
			if i.logger != nil {
				i.logger.Debug("skipping cookie processing for excluded method",
					"method", info.FullMethod)
			}
			return handler(ctx, req)
		}

		ctx, err := i.prepareContext(ctx, info.FullMethod)
		if err != nil {
			return nil, err
		}

		resp, err := handler(ctx, req)
		if err != nil {
			return resp, err
		}

		md, err := i.outgoingMetadata(ctx, info.FullMethod)
		if err != nil {
			return nil, err
		}
		if md.Len() > 0 {
			if err := grpc.SetHeader(ctx, md); err != nil {
				return nil, i.errorHandler(err)
			}
		}
		return resp, nil
	}
}

// StreamServerInterceptor returns a grpc.StreamServerInterceptor that
// decodes incoming cookies into the stream context. Outgoing cookies are
// sent with the response header, i.e. before the first message or when the
// handler returns, whichever comes first.
func (i *CookieInterceptor) StreamServerInterceptor() grpc.StreamServerInterceptor {
	return func(
		srv any,
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		if i.excludedMethods[info.FullMethod] {
			if i.logger != nil {
				i.logger.Debug("skipping cookie processing for excluded method",
					"method", info.FullMethod)
			}
			return handler(srv, ss)
		}

		ctx, err := i.prepareContext(ss.Context(), info.FullMethod)
		if err != nil {
			return err
		}

		wrapped := &wrappedServerStream{
			ServerStream: ss,
			ctx:          ctx,
			interceptor:  i,
			method:       info.FullMethod,
		}

		if err := handler(srv, wrapped); err != nil {
			return err
		}
		return wrapped.flush()
	}
}

// prepareContext stores the decrypted incoming values and an empty outgoing
// collection in ctx.
func (i *CookieInterceptor) prepareContext(ctx context.Context, method string) (context.Context, error) {
	cookies, err := i.cookieExtractor(ctx)
	if err != nil {
		if i.logger != nil {
			i.logger.Error("failed to extract cookies from gRPC metadata",
				"error", err,
				"method", method)
		}
		return ctx, i.errorHandler(err)
	}

	v := i.processor.ProcessValues(cookiemiddleware.ValuesFromCookies(cookies))

	ctx = core.SetValues(ctx, v)
	return core.SetCookies(ctx, i.factory.Cookies()), nil
}

// outgoingMetadata encrypts the outgoing collection stored in ctx.
func (i *CookieInterceptor) outgoingMetadata(ctx context.Context, method string) (metadata.MD, error) {
	outgoing, err := core.GetCookies(ctx)
	if err != nil {
		return metadata.MD{}, nil
	}

	processed, err := i.processor.ProcessCookies(outgoing)
	if err != nil {
		if i.logger != nil {
			i.logger.Error("failed to encrypt outgoing cookies",
				"error", err,
				"method", method)
		}
		return nil, i.errorHandler(err)
	}

	md := metadata.MD{}
	for _, v := range processed.Header() {
		md.Append(SetCookieMetadataKey, v)
	}
	return md, nil
}

// wrappedServerStream wraps grpc.ServerStream with the cookie context and
// sends the outgoing cookies with the response header.
type wrappedServerStream struct {
	grpc.ServerStream
	ctx         context.Context
	interceptor *CookieInterceptor
	method      string

	flushed bool
	err     error
}

// Context returns the wrapped context with the cookie values.
func (w *wrappedServerStream) Context() context.Context {
	return w.ctx
}

func (w *wrappedServerStream) flush() error {
	if w.flushed {
		return w.err
	}
	w.flushed = true

	md, err := w.interceptor.outgoingMetadata(w.ctx, w.method)
	if err != nil {
		w.err = err
		return err
	}
	if md.Len() > 0 {
		if err := w.ServerStream.SetHeader(md); err != nil {
			w.err = w.interceptor.errorHandler(err)
		}
	}
	return w.err
}

func (w *wrappedServerStream) SendHeader(md metadata.MD) error {
	if err := w.flush(); err != nil {
		return err
	}
	return w.ServerStream.SendHeader(md)
}

func (w *wrappedServerStream) SendMsg(m any) error {
	if err := w.flush(); err != nil {
		return err
	}
	return w.ServerStream.SendMsg(m)
}
