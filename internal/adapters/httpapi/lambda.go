package httpapi

import (
	"bytes"
	"context"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

// LambdaHandler adapta eventos de API Gateway (HTTP API, payload v2) al Server.
func LambdaHandler(h http.Handler) func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	return func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		body := []byte(req.Body)
		if req.IsBase64Encoded {
			b, err := base64.StdEncoding.DecodeString(req.Body)
			if err != nil {
				return events.APIGatewayV2HTTPResponse{StatusCode: http.StatusBadRequest, Body: "bad body encoding"}, nil
			}
			body = b
		}

		method := req.RequestContext.HTTP.Method
		if method == "" {
			method = http.MethodPost
		}
		path := req.RawPath
		if path == "" {
			path = "/interactions"
		}

		httpReq, err := http.NewRequestWithContext(ctx, method, path, bytes.NewReader(body))
		if err != nil {
			return events.APIGatewayV2HTTPResponse{StatusCode: http.StatusBadRequest, Body: err.Error()}, nil
		}
		for k, v := range req.Headers {
			httpReq.Header.Set(k, v)
		}

		w := newBufferedWriter()
		h.ServeHTTP(w, httpReq)

		headers := make(map[string]string, len(w.header))
		for k, v := range w.header {
			headers[k] = strings.Join(v, ",")
		}
		return events.APIGatewayV2HTTPResponse{
			StatusCode: w.status,
			Headers:    headers,
			Body:       w.body.String(),
		}, nil
	}
}

type bufferedWriter struct {
	header http.Header
	body   bytes.Buffer
	status int
}

func newBufferedWriter() *bufferedWriter {
	return &bufferedWriter{header: http.Header{}, status: http.StatusOK}
}

func (w *bufferedWriter) Header() http.Header         { return w.header }
func (w *bufferedWriter) Write(b []byte) (int, error) { return w.body.Write(b) }
func (w *bufferedWriter) WriteHeader(code int)        { w.status = code }
