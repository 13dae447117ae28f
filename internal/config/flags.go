package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN (postgres URI or sqlite file)
//	-f directory of the file blob store
//	-c/-config json file path with configs
//	-storage-driver record store driver (memory, postgres, sqlite, dynamodb)
//	-blob-driver photo store driver (file, s3)
//	-s3-bucket bucket of the s3 blob store
//	-password-hasher password digest (sha256, hmac, bcrypt)
//	-password-hash-key key of the hmac hasher
//	-public-base-url externally visible base URL
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-strict-update answer 404 when updating a missing card
//	-log-level minimal log level
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var blobDir string
	var databaseDSN string
	var jsonConfigPath string
	var storageDriver, blobDriver, s3Bucket string
	var passwordHasher, passwordHashKey string
	var publicBaseURL string
	var requestTimeout time.Duration
	var strictUpdate bool
	var logLevel string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&blobDir, "f", "", "Photo directory of the file blob store")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&storageDriver, "storage-driver", "", "Record store: memory, postgres, sqlite or dynamodb")
	flag.StringVar(&blobDriver, "blob-driver", "", "Photo store: file or s3")
	flag.StringVar(&s3Bucket, "s3-bucket", "", "S3 bucket for photos")
	flag.StringVar(&passwordHasher, "password-hasher", "", "Password digest: sha256, hmac or bcrypt")
	flag.StringVar(&passwordHashKey, "password-hash-key", "", "Password hash key")
	flag.StringVar(&publicBaseURL, "public-base-url", "", "Public base URL of the server")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.BoolVar(&strictUpdate, "strict-update", false, "Answer 404 when updating a missing card")
	flag.StringVar(&logLevel, "log-level", "", "Minimal log level")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			PasswordHasher:  passwordHasher,
			PasswordHashKey: passwordHashKey,
			StrictUpdate:    strictUpdate,
			PublicBaseURL:   publicBaseURL,
			LogLevel:        logLevel,
		},
		Storage: Storage{
			Driver:     storageDriver,
			BlobDriver: blobDriver,
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				BlobDir: blobDir,
			},
			S3: S3{
				Bucket: s3Bucket,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
