// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
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

// ParseFlags parses the client flags from args (without the program name).
//
// Flags:
//
//	-a gateway address in format [host]:[port]
//	-api-id application identifier
//	-api-hash application secret
//	-d history database path
//	-c/-config json file path with configs
//	-request-timeout gateway request timeout (e.g., "15s")
//	-poll-timeout update poll timeout (e.g., "1s")
//	-queue-size channel capacity
//	-render-tick render loop interval (e.g., "10ms")
//	-prompt operator prompt mode ("tui" or "line")
//	-markdown render message text as markdown
//	-test-dc use the service test environment
//	-log-verbosity messaging library log level
//	-log log file path
func ParseFlags(args []string) (*StructuredConfig, error) {
	var gatewayAddress NetAddress
	var apiID int
	var apiHash string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var pollTimeout time.Duration
	var queueSize int
	var renderTick time.Duration
	var promptMode string
	var markdown bool
	var useTestDC bool
	var logVerbosity int
	var logPath string

	fs := flag.NewFlagSet(programName(), flag.ContinueOnError)
	fs.Var(&gatewayAddress, "a", "Gateway address host:port")
	fs.IntVar(&apiID, "api-id", 0, "Application identifier")
	fs.StringVar(&apiHash, "api-hash", "", "Application secret")
	fs.StringVar(&databaseDSN, "d", "", "History database path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Gateway request timeout (e.g., 15s)")
	fs.DurationVar(&pollTimeout, "poll-timeout", 0, "Update poll timeout (e.g., 1s)")
	fs.IntVar(&queueSize, "queue-size", 0, "Authorization and render queue capacity")
	fs.DurationVar(&renderTick, "render-tick", 0, "Render loop interval (e.g., 10ms)")
	fs.StringVar(&promptMode, "prompt", "", "Operator prompt mode: tui or line")
	fs.BoolVar(&markdown, "markdown", false, "Render message text as markdown")
	fs.BoolVar(&useTestDC, "test-dc", false, "Use the service test environment")
	fs.IntVar(&logVerbosity, "log-verbosity", 0, "Messaging library log level")
	fs.StringVar(&logPath, "log", "", "Log file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			APIID:   int32(apiID),
			APIHash: apiHash,
		},
		Adapter: Adapter{
			HTTPAddress:    gatewayAddress.String(),
			RequestTimeout: requestTimeout,
			PollTimeout:    pollTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Session: Session{
			UseTestDC:    useTestDC,
			LogVerbosity: logVerbosity,
		},
		Workers: Workers{
			QueueSize:  queueSize,
			RenderTick: renderTick,
		},
		TUI: TUI{
			PromptMode: promptMode,
			Markdown:   markdown,
		},
		Log:          Log{Path: logPath},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func programName() string {
	if len(os.Args) > 0 {
		return os.Args[0]
	}
	return "client"
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
