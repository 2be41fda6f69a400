package consts

const (
	ApplicationName    = "Indigenous Art Atlas"
	ApplicationVersion = "1.0.0"
)
