package intake

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/recordkit/pkg/batch"
	"github.com/dmitrymomot/recordkit/pkg/clientip"
	"github.com/dmitrymomot/recordkit/pkg/httpserver"
	"github.com/dmitrymomot/recordkit/pkg/logger"
	"github.com/dmitrymomot/recordkit/pkg/ratelimiter"
	"github.com/dmitrymomot/recordkit/pkg/record"
	"github.com/dmitrymomot/recordkit/pkg/report"
	"github.com/dmitrymomot/recordkit/pkg/requestid"
	"github.com/dmitrymomot/recordkit/pkg/source"
)

const (
	codeInvalidBody   = "invalid_body"
	codeBodyTooLarge  = "body_too_large"
	codeInternalError = "internal_error"
)

// Router mounts the intake routes. A nil log discards output.
func Router(p *batch.Processor, log *slog.Logger, opts ...Option) chi.Router {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	h := &handler{processor: p, log: log.With(logger.Component("intake"))}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Group(func(r chi.Router) {
		if o.limiter != nil {
			r.Use(ratelimiter.Middleware(o.limiter, clientip.GetIP))
		}
		r.Post("/validate", h.validate)
	})

	return r
}

type handler struct {
	processor *batch.Processor
	log       *slog.Logger
}

func (h *handler) validate(w http.ResponseWriter, r *http.Request) {
	records, err := decodeBody(r)
	if err != nil {
		status, code := http.StatusBadRequest, codeInvalidBody
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status, code = http.StatusRequestEntityTooLarge, codeBodyTooLarge
		}
		h.log.WarnContext(r.Context(), "rejected request body", logger.Error(err))
		h.respond(w, r, status, Response{Error: &ErrorDetail{Code: code, Message: err.Error()}})
		return
	}

	res := h.processor.Process(r.Context(), records)
	h.respond(w, r, http.StatusOK, Response{Data: report.Build(res)})
}

func (h *handler) respond(w http.ResponseWriter, r *http.Request, status int, body Response) {
	if err := writeJSON(w, status, body); err != nil {
		h.log.ErrorContext(r.Context(), "failed to write response", logger.Error(err))
	}
}

func decodeBody(r *http.Request) ([]record.Raw, error) {
	if r.Body == nil {
		return nil, errors.New("request body is required")
	}
	defer r.Body.Close()

	decode := source.DecodeJSON
	if mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err == nil {
		switch mt {
		case "application/yaml", "application/x-yaml", "text/yaml":
			decode = source.DecodeYAML
		}
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	return decode(bytes.NewReader(body))
}
