package api

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
)

// APIProfileUpdate updates the merchant profile. PUT replaces the json
// profile fields, PATCH applies a partial update, POST uploads the brand
// logo as multipart form data.
// @Summary Update the merchant profile
// @Tags profile
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Success 200 {object} interface{} "upstream passthrough"
// @Failure 400 {object} messageResponse "missing brand_logo file part on logo upload"
// @Failure 401 {object} messageResponse
// @Router /profile/update [put]
func APIProfileUpdate(w http.ResponseWriter, r *http.Request) {
	session, ok := resolveSession(w, r)
	if !ok {
		return
	}

	if r.Method == http.MethodPost {
		// logo uploads must carry a brand_logo file part; the body is
		// buffered so it can be validated and still forwarded verbatim
		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, &messageResponse{Message: "invalid request body"})
			return
		}
		if !multipartHasFilePart(body, r.Header.Get("Content-Type"), "brand_logo") {
			writeJSON(w, http.StatusBadRequest, &messageResponse{Message: "brand_logo file is required"})
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))
	}

	proxyUpstream(w, r, session, r.Method, "/api/v1/merchant/profile")
}

func multipartHasFilePart(body []byte, contentType, name string) bool {
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != "multipart/form-data" {
		return false
	}
	boundary := params["boundary"]
	if boundary == "" {
		return false
	}

	reader := multipart.NewReader(bytes.NewReader(body), boundary)
	for {
		part, err := reader.NextPart()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				logger.WithError(err).Debug("error reading multipart body")
			}
			return false
		}
		if part.FormName() == name && part.FileName() != "" {
			return true
		}
	}
}
