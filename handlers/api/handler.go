package api

// @title ZeonixPay Dashboard API
// @version 1.0
// @description Proxy routes exposed by the dashboard to its own browser client.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @tag.name payment-methods
// @tag.description Payment method endpoints

// @tag.name withdrawals
// @tag.description Withdraw request endpoints

// @tag.name profile
// @tag.description Merchant profile endpoints

// @tag.name devices
// @tag.description Device management endpoints

// @tag.name users
// @tag.description User management endpoints
