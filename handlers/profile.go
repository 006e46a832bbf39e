package handlers

import (
	"context"
	"net/http"

	"github.com/zeonixpay/zeonix-dashboard/templates"
	"github.com/zeonixpay/zeonix-dashboard/types"
	"github.com/zeonixpay/zeonix-dashboard/types/models"
	"github.com/zeonixpay/zeonix-dashboard/upstream"
)

// Profile will return the merchant profile page using a template
func Profile(w http.ResponseWriter, r *http.Request) {
	defer countPageCall("profile").ObserveDuration()

	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	var templateFiles = append(layoutTemplateFiles, "profile/profile.html")
	var pageTemplate = templates.GetTemplate(templateFiles...)

	data := InitPageData(w, r, "profile", "/profile", "Profile", templateFiles)

	pageData, pageError := getProfilePageData(r.Context(), session)
	if handleUpstreamPageError(w, r, pageError) {
		return
	}
	data.Data = pageData

	w.Header().Set("Content-Type", "text/html")
	if handleTemplateError(w, r, "profile.go", "Profile", "", pageTemplate.ExecuteTemplate(w, "layout", data)) != nil {
		return // an error has occurred and was processed
	}
}

func getProfilePageData(ctx context.Context, session *types.Session) (*models.ProfilePageData, error) {
	client := upstream.GlobalClient

	profile := &types.Profile{}
	err := client.GetJSON(ctx, session.Token, "/api/v1/merchant/profile", nil, profile)
	if err != nil {
		return nil, err
	}

	pageData := &models.ProfilePageData{
		ID:         profile.ID,
		BrandName:  profile.BrandName,
		BrandLogo:  profile.BrandLogo,
		Email:      profile.Email,
		Phone:      profile.Phone,
		WebhookURL: profile.WebhookURL,
		Balance:    profile.Balance,
		ApiKeys:    make([]*models.ProfilePageDataApiKey, 0, len(profile.ApiKeys)),
	}
	for _, key := range profile.ApiKeys {
		pageData.ApiKeys = append(pageData.ApiKeys, &models.ProfilePageDataApiKey{
			ID:       key.ID,
			Label:    key.Label,
			Key:      key.Key,
			LastUsed: key.LastUsed,
			Time:     key.CreatedAt,
		})
	}

	methods, err := getProfilePaymentMethods(ctx, session)
	if err != nil {
		return nil, err
	}
	pageData.PaymentMethods = methods

	return pageData, nil
}

func getProfilePaymentMethods(ctx context.Context, session *types.Session) ([]*models.ProfilePageDataPaymentMethod, error) {
	client := upstream.GlobalClient

	envelope, err := upstream.FetchList[types.PaymentMethod](ctx, client, session.Token, "/api/v1/merchant/payment-methods", nil)
	if err != nil {
		return nil, err
	}

	methods := make([]*models.ProfilePageDataPaymentMethod, 0, len(envelope.Data))
	for idx := range envelope.Data {
		method := &envelope.Data[idx]
		methods = append(methods, &models.ProfilePageDataPaymentMethod{
			ID:            method.ID,
			MethodType:    method.MethodType,
			AccountName:   method.Params.AccountName,
			AccountNumber: method.Params.AccountNumber,
			Status:        method.Status,
			IsPrimary:     method.IsPrimary,
			Time:          method.CreatedAt,
		})
	}
	return methods, nil
}
