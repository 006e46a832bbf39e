package upstream

import (
	"github.com/zeonixpay/zeonix-dashboard/utils"
)

var GlobalClient *Client

// StartGlobalClient is used to start the global upstream api client
func StartGlobalClient() error {
	if GlobalClient != nil {
		return nil
	}

	upstreamCfg := utils.Config.Upstream
	GlobalClient = NewClient(upstreamCfg.Endpoint, upstreamCfg.Headers, upstreamCfg.Timeout, upstreamCfg.DefaultPageSize)

	return nil
}

// MaxPageSize returns the configured page size cap, 100 if unset.
func MaxPageSize() int {
	if utils.Config.Upstream.MaxPageSize > 0 {
		return utils.Config.Upstream.MaxPageSize
	}
	return 100
}
