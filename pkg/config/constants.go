package config

const (
	EnvPrefix = "salepoint"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvSalesTaxRateBps = "SALEPOINT_SALES_TAX_RATE_BPS"
	EnvSalesMaxLineQty = "SALEPOINT_SALES_MAX_LINE_QTY"
)
