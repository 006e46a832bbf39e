package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/zeonixpay/zeonix-dashboard/templates"
	"github.com/zeonixpay/zeonix-dashboard/types/models"
)

// Unavailable will return the upstream outage page using a template
func Unavailable(w http.ResponseWriter, r *http.Request) {
	defer countPageCall("unavailable").ObserveDuration()

	var templateFiles = append(layoutTemplateFiles, "unavailable/unavailable.html")
	var pageTemplate = templates.GetTemplate(templateFiles...)

	data := InitPageData(w, r, "unavailable", "/unavailable", "Service Unavailable", templateFiles)

	retryURL := r.URL.Query().Get("retry")
	if !strings.HasPrefix(retryURL, "/") || strings.HasPrefix(retryURL, "//") {
		retryURL = "/"
	}
	data.Data = &models.UnavailablePageData{
		RetryURL: retryURL,
		Time:     time.Now(),
	}

	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusServiceUnavailable)
	if handleTemplateError(w, r, "unavailable.go", "Unavailable", "", pageTemplate.ExecuteTemplate(w, "layout", data)) != nil {
		return // an error has occurred and was processed
	}
}
