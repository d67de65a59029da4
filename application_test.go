package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/xitonix/kmeta/commands"
	"github.com/xitonix/kmeta/internal"
)

func parseKafkaFlags(t *testing.T, args ...string) (*commands.KafkaParameters, *commands.GlobalParameters) {
	t.Helper()
	app := kingpin.New("kmeta", "test").DefaultEnvars()
	global := &commands.GlobalParameters{}
	bindAppFlags(app, global)
	params := bindKafkaFlags(app)
	app.Command("noop", "does nothing").Default()
	if _, err := app.Parse(args); err != nil {
		t.Fatalf("Failed to parse the flags: %s", err)
	}
	return params, global
}

func TestKafkaFlags(t *testing.T) {
	testCases := []struct {
		title             string
		args              []string
		env               map[string]string
		expectedBrokers   []string
		expectedVersion   string
		expectedVerbosity internal.VerbosityLevel
	}{
		{
			title:           "default values",
			expectedBrokers: []string{"localhost:19092"},
			expectedVersion: "2.1.1",
		},
		{
			title:             "command line flags",
			args:              []string{"-b", "kafka-1:9092,kafka-2:9092", "--kafka-version", "2.4.0", "-vv"},
			expectedBrokers:   []string{"kafka-1:9092", "kafka-2:9092"},
			expectedVersion:   "2.4.0",
			expectedVerbosity: internal.VeryVerbose,
		},
		{
			title:           "environment variables",
			env:             map[string]string{"KMETA_BROKERS": "kafka-3:9092", "KMETA_KAFKA_VERSION": "2.3.0"},
			expectedBrokers: []string{"kafka-3:9092"},
			expectedVersion: "2.3.0",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.title, func(t *testing.T) {
			for key, value := range tc.env {
				if err := os.Setenv(key, value); err != nil {
					t.Fatalf("Failed to set %s: %s", key, err)
				}
			}
			defer func() {
				for key := range tc.env {
					_ = os.Unsetenv(key)
				}
			}()

			params, global := parseKafkaFlags(t, tc.args...)
			if actual := params.BrokerList(); !reflect.DeepEqual(actual, tc.expectedBrokers) {
				t.Errorf("Expected brokers: %v, Actual: %v", tc.expectedBrokers, actual)
			}
			if params.Version != tc.expectedVersion {
				t.Errorf("Expected version: %s, Actual: %s", tc.expectedVersion, params.Version)
			}
			if params.TLS != nil {
				t.Error("Expected TLS to be disabled")
			}
			if global.Verbosity != tc.expectedVerbosity {
				t.Errorf("Expected verbosity: %s, Actual: %s", tc.expectedVerbosity, global.Verbosity)
			}
		})
	}
}

func TestTLSFlag(t *testing.T) {
	params, _ := parseKafkaFlags(t, "--tls")
	if params.TLS == nil {
		t.Fatal("Expected TLS to be enabled")
	}
	if !params.TLS.InsecureSkipVerify {
		t.Error("Expected the server verification to be disabled without a CA certificate")
	}
}

func TestConfigureTLS(t *testing.T) {
	dir, err := ioutil.TempDir("", "kmeta")
	if err != nil {
		t.Fatalf("Failed to create the temp directory: %s", err)
	}
	defer os.RemoveAll(dir)

	invalidCA := filepath.Join(dir, "invalid.pem")
	if err := ioutil.WriteFile(invalidCA, []byte("not a certificate"), 0600); err != nil {
		t.Fatalf("Failed to write the CA file: %s", err)
	}

	testCases := []struct {
		title       string
		params      *commands.TLSParameters
		expectError bool
	}{
		{
			title:  "no CA certificate",
			params: &commands.TLSParameters{Enabled: true},
		},
		{
			title:       "missing CA certificate file",
			params:      &commands.TLSParameters{Enabled: true, CACert: filepath.Join(dir, "missing.pem")},
			expectError: true,
		},
		{
			title:       "invalid CA certificate",
			params:      &commands.TLSParameters{Enabled: true, CACert: invalidCA},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.title, func(t *testing.T) {
			conf, err := configureTLS(tc.params)
			if tc.expectError {
				if err == nil {
					t.Error("Expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, Actual: %s", err)
			}
			if !conf.InsecureSkipVerify {
				t.Error("Expected InsecureSkipVerify to be true")
			}
		})
	}
}
