// Package config loads the tutor configuration.
//
// Sources, later ones winning:
//
//  1. Defaults (see Default).
//  2. .env files, loaded into the process environment with godotenv.
//     Variables already set in the environment are kept.
//  3. An optional HCL file. Expressions may read the environment through
//     the env object, e.g. api_key = env.OPENAI_API_KEY.
//  4. Command-line flags, applied by the caller.
//
// When the selected provider has no API key after these steps, the key is
// taken from OPENAI_API_KEY or GEMINI_API_KEY.
//
// Example file:
//
//	log_level  = "debug"
//	log_format = "json"
//	listen     = ":9090"
//
//	provider "openai" {
//	  api_key = env.OPENAI_API_KEY
//	  model   = "gpt-4"
//	  timeout = "15s"
//	}
//
//	graph {
//	  nodes     = 9
//	  density   = 0.4
//	  algorithm = "BFS"
//	  seed      = 42
//	  max_nodes = 15
//	}
package config
