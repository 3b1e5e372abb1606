package config

import "time"

const (
	DefaultListenAddress   = ":3000"
	DefaultShutdownTimeout = 10 // seconds
	DefaultLogLevel        = "info"
)

// TxDeployTimeout bounds the deploy command's wait for the receipt.
const TxDeployTimeout = 5 * time.Minute
