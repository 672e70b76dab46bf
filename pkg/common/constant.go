package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyDashDBType string = "DASH_DB_TYPE"
	EnvKeyDashDbPath string = "DASH_DB_PATH"

	EnvKeyDashHttpHostPort string = "DASH_HTTP_HOST_PORT"

	EnvKeyDashSeedFile  string = "DASH_SEED_FILE"
	EnvKeyDashExportDir string = "DASH_EXPORT_DIR"

	EnvKeyDashDefaultRate  string = "DASH_DEFAULT_RATE"
	EnvKeyDashDefaultBurst string = "DASH_DEFAULT_BURST"

	LoggerNameDashCore      string = "dash_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerFieldDashCategory string = "category"
	LoggerCategoryDevice    string = "device"
	LoggerCategoryActionLog string = "action_log"
	LoggerCategoryFeed      string = "feed"
	LoggerCategoryRule      string = "rule"
	LoggerCategorySession   string = "session"
	LoggerCategoryNav       string = "navigation"
	LoggerCategoryExport    string = "export"
)
