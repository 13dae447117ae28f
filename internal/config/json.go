package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON field names.
type StructuredJSONConfig struct {
	App struct {
		PasswordHasher  string `json:"password_hasher"`
		PasswordHashKey string `json:"password_hash_key"`
		StrictUpdate    bool   `json:"strict_update"`
		PublicBaseURL   string `json:"public_base_url"`
		Function        string `json:"function"`
		LogLevel        string `json:"log_level"`
		Version         string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		Driver     string `json:"driver"`
		BlobDriver string `json:"blob_driver"`
		Region     string `json:"region"`

		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		DynamoDB struct {
			CardsTable string `json:"cards_table"`
			UsersTable string `json:"users_table"`
			Endpoint   string `json:"endpoint"`
		} `json:"dynamodb,omitempty"`

		Files struct {
			BlobDir string `json:"blob_dir"`
		} `json:"files,omitempty"`

		S3 struct {
			Bucket    string `json:"bucket"`
			Endpoint  string `json:"endpoint"`
			AccessKey string `json:"access_key"`
			SecretKey string `json:"secret_key"`
		} `json:"s3,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			PasswordHasher:  jsonCfg.App.PasswordHasher,
			PasswordHashKey: jsonCfg.App.PasswordHashKey,
			StrictUpdate:    jsonCfg.App.StrictUpdate,
			PublicBaseURL:   jsonCfg.App.PublicBaseURL,
			Function:        jsonCfg.App.Function,
			LogLevel:        jsonCfg.App.LogLevel,
			Version:         jsonCfg.App.Version,
		},
		Storage: Storage{
			Driver:     jsonCfg.Storage.Driver,
			BlobDriver: jsonCfg.Storage.BlobDriver,
			Region:     jsonCfg.Storage.Region,
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			DynamoDB: DynamoDB{
				CardsTable: jsonCfg.Storage.DynamoDB.CardsTable,
				UsersTable: jsonCfg.Storage.DynamoDB.UsersTable,
				Endpoint:   jsonCfg.Storage.DynamoDB.Endpoint,
			},
			Files: Files{
				BlobDir: jsonCfg.Storage.Files.BlobDir,
			},
			S3: S3{
				Bucket:    jsonCfg.Storage.S3.Bucket,
				Endpoint:  jsonCfg.Storage.S3.Endpoint,
				AccessKey: jsonCfg.Storage.S3.AccessKey,
				SecretKey: jsonCfg.Storage.S3.SecretKey,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
