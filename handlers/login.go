package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/zeonixpay/zeonix-dashboard/services"
	"github.com/zeonixpay/zeonix-dashboard/templates"
	"github.com/zeonixpay/zeonix-dashboard/types/models"
	"github.com/zeonixpay/zeonix-dashboard/upstream"
)

// Login will return the login page using a template
func Login(w http.ResponseWriter, r *http.Request) {
	defer countPageCall("login").ObserveDuration()

	if _, err := services.GlobalSessionService.ResolveSession(r); err == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	renderLoginPage(w, r, &models.LoginPageData{})
}

// LoginPost handles the login form submission
func LoginPost(w http.ResponseWriter, r *http.Request) {
	defer countPageCall("login").ObserveDuration()

	if err := r.ParseForm(); err != nil {
		renderLoginPage(w, r, &models.LoginPageData{ErrorMessage: "invalid form submission"})
		return
	}
	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		renderLoginPage(w, r, &models.LoginPageData{
			Username:     username,
			ErrorMessage: "username and password are required",
		})
		return
	}

	result, err := upstream.GlobalClient.Login(r.Context(), username, password)
	if err != nil {
		if upstream.IsOutage(err) {
			http.Redirect(w, r, "/unavailable", http.StatusSeeOther)
			return
		}
		message := "request failed"
		apiErr := &upstream.APIError{}
		if errors.As(err, &apiErr) {
			message = apiErr.Message()
		}
		renderLoginPage(w, r, &models.LoginPageData{
			Username:     username,
			ErrorMessage: message,
		})
		return
	}
	if !result.Status || result.Token == "" {
		renderLoginPage(w, r, &models.LoginPageData{
			Username:     username,
			ErrorMessage: "login rejected",
		})
		return
	}

	_, cookie, err := services.GlobalSessionService.CreateSession(r.Context(), result.Token, result.Role)
	if err != nil {
		handlePageError(w, r, err)
		return
	}
	http.SetCookie(w, cookie)

	next := r.URL.Query().Get("next")
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		next = "/"
	}
	http.Redirect(w, r, next, http.StatusSeeOther)
}

// Logout destroys the caller's session and returns to the login page
func Logout(w http.ResponseWriter, r *http.Request) {
	services.GlobalSessionService.DestroySession(r.Context(), w, r)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func renderLoginPage(w http.ResponseWriter, r *http.Request, pageData *models.LoginPageData) {
	var templateFiles = append(layoutTemplateFiles, "login/login.html")
	var pageTemplate = templates.GetTemplate(templateFiles...)

	data := InitPageData(w, r, "login", "/login", "Login", templateFiles)
	data.Data = pageData

	w.Header().Set("Content-Type", "text/html")
	if handleTemplateError(w, r, "login.go", "renderLoginPage", "", pageTemplate.ExecuteTemplate(w, "layout", data)) != nil {
		return // an error has occurred and was processed
	}
}
