package config

import "os"

const defaultAddr = ":8080"

func Addr() string {
	addr, ok := os.LookupEnv("APP_ADDR")
	if !ok || addr == "" {
		return defaultAddr
	}
	return addr
}

func BasePath() string {
	return os.Getenv("APP_BASE_PATH")
}

// Development turns on debug logging and colored output. Any value
// other than "0" counts as set.
func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}
