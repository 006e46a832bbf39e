package handlers

import (
	"context"
	"net/http"

	"github.com/zeonixpay/zeonix-dashboard/listview"
	"github.com/zeonixpay/zeonix-dashboard/templates"
	"github.com/zeonixpay/zeonix-dashboard/types"
	"github.com/zeonixpay/zeonix-dashboard/types/models"
	"github.com/zeonixpay/zeonix-dashboard/upstream"
)

var usersFilterKeys = []string{"role", "status", "search"}

// Users will return the user management page using a template
func Users(w http.ResponseWriter, r *http.Request) {
	defer countPageCall("users").ObserveDuration()

	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	var templateFiles = append(layoutTemplateFiles, "users/users.html")
	var pageTemplate = templates.GetTemplate(templateFiles...)

	data := InitPageData(w, r, "administration", "/users", "Users", templateFiles)

	filters := listview.ParseFilters(r.URL.Query(), usersFilterKeys)
	pageData, redirect, pageError := getUsersPageData(r.Context(), session, filters)
	if handleUpstreamPageError(w, r, pageError) {
		return
	}
	if redirect != "" {
		http.Redirect(w, r, redirect, http.StatusFound)
		return
	}
	data.Data = pageData

	w.Header().Set("Content-Type", "text/html")
	if handleTemplateError(w, r, "users.go", "Users", "", pageTemplate.ExecuteTemplate(w, "layout", data)) != nil {
		return // an error has occurred and was processed
	}
}

func getUsersPageData(ctx context.Context, session *types.Session, filters *listview.Filters) (*models.UsersPageData, string, error) {
	pager := listview.NewPager(filters.Page, effectivePageSize(filters))

	client := upstream.GlobalClient
	envelope, err := upstream.FetchList[types.User](ctx, client, session.Token, "/api/v1/admin/users", filters.UpstreamQuery(client.DefaultPageSize()))
	if err != nil {
		return nil, "", err
	}

	pager.Observe(envelope.Count, len(envelope.Data), envelope.Next != nil, envelope.Previous != nil)
	if page, needed := pager.ClampRedirect(); needed {
		return nil, filters.PageURL("/users", page), nil
	}

	pageData := &models.UsersPageData{
		FilterRole:   filters.Get("role"),
		FilterStatus: filters.Get("status"),
		FilterSearch: filters.Get("search"),
		Users:        make([]*models.UsersPageDataUser, 0, len(envelope.Data)),
		UserCount:    envelope.Count,
	}
	for idx := range envelope.Data {
		user := &envelope.Data[idx]
		pageData.Users = append(pageData.Users, &models.UsersPageDataUser{
			ID:        user.ID,
			Username:  user.Username,
			Email:     user.Email,
			Role:      user.Role,
			IsActive:  user.IsActive,
			LastLogin: user.LastLogin,
			Time:      user.CreatedAt,
		})
	}
	pageData.ListPaging = buildListPaging(filters, pager, "/users")

	return pageData, "", nil
}
