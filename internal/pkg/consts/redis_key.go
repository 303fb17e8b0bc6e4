package consts

const (
	PageIndexKey     = "page:index:"
	AuthTokenDenyKey = "auth:token:deny:"
)
