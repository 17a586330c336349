package main

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/dekarrin/ppauto/internal/config"
	"github.com/dekarrin/ppauto/internal/version"
	"github.com/dekarrin/ppauto/server"
	"github.com/dekarrin/ppauto/server/serr"
)

func runServe(args []string) int {
	fs := newFlagSet("serve")
	flagListen := fs.StringP("listen", "l", "", "Listen on the given address. Must be ADDRESS:PORT or :PORT.")
	flagSecret := fs.StringP("secret", "s", "", "Use the given secret for signing JWTs. Repeated until at least 32 bytes. Max 64 bytes.")
	flagDB := fs.String("db", "", "DB connection string: inmem, or sqlite:path/to/data_dir.")
	flagConfig := fs.String("config", "", "Path to a TOML config file. Defaults to .ppauto.toml in the working directory if present.")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		return ExitInitError
	}

	if len(fs.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "serve takes no positional arguments\nDo serve -h for help.\n")
		return ExitInitError
	}

	cfg, err := config.Load(*flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: load config: %s\n", err.Error())
		return ExitInitError
	}

	listenAddr := cfg.ListenAddr
	if fs.Lookup("listen").Changed {
		listenAddr = *flagListen
	}
	addr, port, err := splitListenAddr(listenAddr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\nDo serve -h for help.\n", err.Error())
		return ExitInitError
	}

	dbConnStr := ""
	if fs.Lookup("db").Changed {
		dbConnStr = *flagDB
	}

	var dbCfg server.Database
	if dbConnStr != "" {
		dbCfg, err = server.ParseDBConnString(dbConnStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\nDo serve -h for help.\n", err.Error())
			return ExitInitError
		}
	} else {
		dbCfg = server.Database{Type: server.DatabaseInMemory}
	}

	var tokSecret []byte
	secretStr := cfg.TokenSecret
	if fs.Lookup("secret").Changed {
		secretStr = *flagSecret
	}
	if secretStr != "" {
		tokSecret = []byte(secretStr)
		for len(tokSecret) < server.MinSecretSize {
			doubled := make([]byte, len(tokSecret)*2)
			copy(doubled, tokSecret)
			copy(doubled[len(tokSecret):], tokSecret)
			tokSecret = doubled
		}
		if len(tokSecret) > server.MaxSecretSize {
			fmt.Fprintf(os.Stderr, "ERROR: token secret is %d bytes, but must be <= %d bytes\n", len(tokSecret), server.MaxSecretSize)
			return ExitInitError
		}
	} else {
		tokSecret = make([]byte, server.MaxSecretSize)
		if _, err := rand.Read(tokSecret); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: could not generate token secret: %s\n", err.Error())
			return ExitInitError
		}
		log.Printf("WARN  using generated token secret; all tokens issued will become invalid at shutdown")
	}

	svrCfg := server.Config{
		TokenSecret: tokSecret,
		DB:          dbCfg,
		CacheDir:    cfg.CacheDir,
	}

	svr, err := server.New(svrCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: could not start server: %s\n", err.Error())
		return ExitInitError
	}
	defer svr.Close()

	if err := svr.Bootstrap(context.Background(), "admin", "password"); err != nil && !errors.Is(err, serr.ErrAlreadyExists) {
		log.Printf("ERROR could not create initial admin user: %v", err)
		return ExitInitError
	}
	log.Printf("INFO  Starting ppauto compile service %s...", version.Current)

	bindAddr := fmt.Sprintf("%s:%d", addr, port)
	if err := svr.ListenAndServe(bindAddr); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		return ExitInitError
	}

	return ExitSuccess
}

// splitListenAddr parses a listen address of the form ADDRESS:PORT or
// :PORT, defaulting to localhost:8080 if addr is empty.
func splitListenAddr(addr string) (host string, port int, err error) {
	if addr == "" {
		addr = "localhost:8080"
	}

	parts := strings.SplitN(addr, ":", 2)
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("listen address is not in ADDRESS:PORT or :PORT format")
	}

	p, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", 0, fmt.Errorf("%q is not a valid port number", parts[1])
	}

	return parts[0], p, nil
}
