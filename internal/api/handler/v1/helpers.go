package v1

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ticketlot/admin-gateway/internal/api/handler/v1/response"
	"github.com/ticketlot/admin-gateway/internal/service"
	"github.com/ticketlot/admin-gateway/internal/upstream"
)

// renderUpstreamErr maps failures from platform-backed operations onto
// the gateway's error responses. Platform rejections pass through with
// their message; transport failures become 502 so the dashboard can
// tell "the platform said no" apart from "the platform is down".
func renderUpstreamErr(ctx *gin.Context, err error) {
	if errors.Is(err, service.ErrUnauthorized) {
		response.RenderErr(ctx, response.ErrUnauthorized(service.ErrUnauthorized))

		return
	}

	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode >= http.StatusBadRequest && apiErr.StatusCode < http.StatusInternalServerError {
			response.RenderErr(ctx, response.NewErr(apiErr.StatusCode, apiErr))

			return
		}

		response.RenderErr(ctx, response.ErrBadGateway(apiErr))

		return
	}

	zap.L().Warn("platform request failed", zap.Error(err))
	response.RenderErr(ctx, response.ErrBadGateway(errors.New("lottery platform is unreachable")))
}

// pagingParams reads the page/limit query parameters, tolerating
// absence and garbage alike.
func pagingParams(ctx *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(ctx.Query("page"))
	limit, _ = strconv.Atoi(ctx.Query("limit"))

	return page, limit
}

// formUpload buffers the named optional file part of a multipart form.
// A missing part is fine and yields a nil upload; a broken one renders
// a 400 and reports false.
func formUpload(ctx *gin.Context, part string) (*upstream.Upload, bool) {
	header, err := ctx.FormFile(part)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, true
		}

		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("read %q file part -> %w", part, err)))

		return nil, false
	}

	f, err := header.Open()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("open %q file part -> %w", part, err)))

		return nil, false
	}
	defer f.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, f); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("read %q file part -> %w", part, err)))

		return nil, false
	}

	return &upstream.Upload{
		FileName: header.Filename,
		Content:  &buf,
	}, true
}
