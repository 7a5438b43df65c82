// Package config loads vangoui.json, the settings file for the gallery
// server, the static exporter and the terminal preview.
//
// # Configuration File Structure
//
//	{
//	  "name": "Acme UI",
//	  "gallery": {
//	    "port": 6006,
//	    "host": "localhost",
//	    "cacheSize": 128,
//	    "metrics": true,
//	    "tracing": false,
//	    "shutdownTimeout": "10s"
//	  },
//	  "export": {
//	    "target": "s3://acme-ui/stories",
//	    "region": "eu-west-1"
//	  },
//	  "stories": {
//	    "catalog": "./stories.yaml"
//	  },
//	  "toast": {
//	    "delay": "5s",
//	    "limit": 5,
//	    "position": "top-right"
//	  }
//	}
//
// A .env file next to vangoui.json is loaded before environment overrides
// are applied. Overrides use the VANGOUI_ prefix: VANGOUI_PORT, VANGOUI_HOST,
// VANGOUI_CACHE_SIZE, VANGOUI_METRICS, VANGOUI_TRACING, VANGOUI_EXPORT_TARGET,
// VANGOUI_EXPORT_REGION, VANGOUI_STORIES, VANGOUI_TOAST_DELAY,
// VANGOUI_TOAST_LIMIT and VANGOUI_TOAST_POSITION.
//
// # Usage
//
//	cfg, err := config.LoadOrDefault(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Gallery:", cfg.URL())
package config
