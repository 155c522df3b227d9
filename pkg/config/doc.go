// Package config loads typed configuration from the environment.
//
// It combines github.com/joho/godotenv, which reads optional .env files into
// the process environment, with github.com/caarlos0/env/v11, which parses the
// environment into structs annotated with env tags:
//
//	type Config struct {
//		Addr      string `env:"PAYLOADKIT_ADDR" envDefault:":8080"`
//		RulesPath string `env:"PAYLOADKIT_RULES,required"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Each struct type is parsed once; later calls for the same type are served
// from an in-process cache. Reset clears the cache, which tests use after
// changing the environment.
package config
