package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

func GetIntEnv(envVarName string, defaultValue int) int {
	envValue, ok := os.LookupEnv(envVarName)
	if !ok || envValue == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(envValue)
	if err != nil {
		panic(fmt.Sprintf("Environment variable %s is not valid. '%s' is not an integer", envVarName, envValue))
	}
	return intValue
}

func GetStringEnv(envVar string, defaultValue string) string {
	envValue, ok := os.LookupEnv(envVar)
	if !ok || envValue == "" {
		return defaultValue
	}
	return envValue
}

func GetBoolEnv(envVar string, defaultValue bool) bool {
	envValue, ok := os.LookupEnv(envVar)
	if !ok || envValue == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(envValue)
	if err != nil {
		log.Fatalf("%s environment variable is not valid: '%s' cannot be converted to bool", envVar, envValue)
	}
	return boolValue
}
