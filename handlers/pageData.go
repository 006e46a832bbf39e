package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"syscall"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/zeonixpay/zeonix-dashboard/services"
	"github.com/zeonixpay/zeonix-dashboard/types"
	"github.com/zeonixpay/zeonix-dashboard/utils"
)

var layoutTemplateFiles = []string{
	"_layout/layout.html",
	"_layout/header.html",
	"_layout/footer.html",
	"_layout/paging.html",
}

func InitPageData(w http.ResponseWriter, r *http.Request, active, path, title string, mainTemplates []string) *types.PageData {
	fullTitle := fmt.Sprintf("%v - %v", title, utils.Config.Frontend.SiteName)

	if title == "" {
		fullTitle = fmt.Sprintf("%v", utils.Config.Frontend.SiteName)
	}

	buildTime, _ := time.Parse("2006-01-02T15:04:05Z", utils.Buildtime)
	siteDomain := utils.Config.Frontend.SiteDomain
	if siteDomain == "" {
		siteDomain = r.Host
	}

	data := &types.PageData{
		Meta: &types.Meta{
			Title:       fullTitle,
			Description: "ZeonixPay merchant dashboard for deposits, payouts and settlement",
			Domain:      siteDomain,
			Path:        path,
			Templates:   strings.Join(mainTemplates, ","),
		},
		Active:         active,
		Data:           &types.Empty{},
		Version:        utils.GetDashboardVersion(),
		BuildTime:      fmt.Sprintf("%v", buildTime.Unix()),
		Year:           time.Now().UTC().Year(),
		DashboardTitle: utils.Config.Frontend.SiteName,
		SiteSubtitle:   utils.Config.Frontend.SiteSubtitle,
		SiteLogo:       utils.Config.Frontend.SiteLogo,
		Lang:           "en-US",
		Debug:          utils.Config.Frontend.Debug,
		DebounceMs:     utils.Config.Frontend.SearchDebounceMs,
		MainMenuItems:  []types.MainMenuItem{},
	}

	if utils.Config.Frontend.SiteDescription != "" {
		data.Meta.Description = utils.Config.Frontend.SiteDescription
	}

	if session, err := services.GlobalSessionService.ResolveSession(r); err == nil {
		data.Role = session.Role
		data.MainMenuItems = createMenuItems(active, session.Role)
	}

	return data
}

func createMenuItems(active, role string) []types.MainMenuItem {
	hiddenFor := []string{"login", "unavailable"}

	if utils.SliceContains(hiddenFor, active) {
		return []types.MainMenuItem{}
	}

	items := []types.MainMenuItem{
		{
			Label:    "Overview",
			Path:     "/",
			IsActive: active == "index",
		},
		{
			Label:    "Transactions",
			IsActive: active == "transactions",
			Groups: []types.NavigationGroup{
				{
					Links: []types.NavigationLink{
						{
							Label: "Deposits",
							Path:  "/deposits",
							Icon:  "fa-arrow-down",
						},
						{
							Label: "Payouts",
							Path:  "/payouts",
							Icon:  "fa-arrow-up",
						},
					},
				},
				{
					Links: []types.NavigationLink{
						{
							Label: "Ledger",
							Path:  "/ledger",
							Icon:  "fa-book",
						},
					},
				},
			},
		},
		{
			Label:    "Withdrawals",
			Path:     "/withdrawals",
			IsActive: active == "withdrawals",
		},
	}

	if role == "admin" {
		items = append(items, types.MainMenuItem{
			Label:    "Administration",
			IsActive: active == "administration",
			Groups: []types.NavigationGroup{
				{
					Links: []types.NavigationLink{
						{
							Label: "Users",
							Path:  "/users",
							Icon:  "fa-users",
						},
					},
				},
				{
					Links: []types.NavigationLink{
						{
							Label: "Devices & Staff",
							Path:  "/devices",
							Icon:  "fa-mobile",
						},
					},
				},
			},
		})
	}

	items = append(items, types.MainMenuItem{
		Label:    "Profile",
		Path:     "/profile",
		IsActive: active == "profile",
	})

	return items
}

// used to handle errors constructed by Template.ExecuteTemplate correctly
func handleTemplateError(w http.ResponseWriter, r *http.Request, fileIdentifier string, functionIdentifier string, infoIdentifier string, err error) error {
	// ignore network related errors
	if err != nil && !errors.Is(err, syscall.EPIPE) && !errors.Is(err, syscall.ETIMEDOUT) {
		logger.WithFields(logger.Fields{
			"file":       fileIdentifier,
			"function":   functionIdentifier,
			"info":       infoIdentifier,
			"error type": fmt.Sprintf("%T", err),
			"route":      r.URL.String(),
		}).WithError(err).Error("error executing template")
		http.Error(w, "Internal server error", http.StatusServiceUnavailable)
	}
	return err
}
