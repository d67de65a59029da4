package main

import (
	"crypto/tls"
	"crypto/x509"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/xitonix/kmeta/commands"
	"github.com/xitonix/kmeta/commands/metadata"
	"github.com/xitonix/kmeta/internal"
	"github.com/xitonix/kmeta/kafka"
)

func newApplication(args []string) error {
	app := kingpin.New("kmeta", "A CLI tool to inspect Kafka cluster metadata.").DefaultEnvars()
	global := &commands.GlobalParameters{}
	bindAppFlags(app, global)
	commands.AddVersionCommand(app, os.Stdout, version, commit, built, runtimeVer)
	kafkaParams := bindKafkaFlags(app)
	metadata.AddCommands(app, global, kafkaParams, os.Stdout)
	_, err := app.Parse(args)
	return err
}

func bindAppFlags(app *kingpin.Application, global *commands.GlobalParameters) {
	app.Flag("colour", "Enables colours in the logs. To disable, use --no-colour.").
		Default("true").
		BoolVar(&global.EnableColor)

	app.Flag("color", "Enables colours in the logs. To disable, use --no-color.").
		Default("true").
		Hidden().
		BoolVar(&global.EnableColor)

	app.PreAction(func(context *kingpin.ParseContext) error {
		enabledColor = global.EnableColor
		return nil
	})

	var verbosity int
	app.Flag("verbose", "The verbosity level of kmeta.").
		Short('v').
		NoEnvar().
		PreAction(func(context *kingpin.ParseContext) error {
			global.Verbosity = internal.ToVerbosityLevel(verbosity)
			return nil
		}).
		CounterVar(&verbosity)
}

func bindKafkaFlags(app *kingpin.Application) *commands.KafkaParameters {
	params := &commands.KafkaParameters{}
	app.Flag("brokers", "The comma separated list of Kafka brokers in server:port format.").
		Short('b').
		Default(commands.DefaultBrokers).
		StringVar(&params.Brokers)
	app.Flag("kafka-version", "Kafka cluster version.").
		Default(kafka.DefaultClusterVersion).
		StringVar(&params.Version)
	app.Flag("client-id", "The client ID reported to the brokers.").
		Default(kafka.DefaultClientID).
		StringVar(&params.ClientID)

	tlsParams := bindTLSFlags(app)
	app.PreAction(func(ctx *kingpin.ParseContext) error {
		if !tlsParams.Enabled {
			return nil
		}
		tlsConfig, err := configureTLS(tlsParams)
		if err != nil {
			return err
		}
		params.TLS = tlsConfig
		return nil
	})
	return params
}

func bindTLSFlags(app *kingpin.Application) *commands.TLSParameters {
	t := &commands.TLSParameters{}
	app.Flag("tls", "Enables TLS (Unverified by default).").
		BoolVar(&t.Enabled)
	app.Flag("ca-cert", `Trusted root certificates for verifying the server. If not set, kmeta will skip server certificate and domain verification.`).
		ExistingFileVar(&t.CACert)
	return t
}

func configureTLS(params *commands.TLSParameters) (*tls.Config, error) {
	tlsConf := tls.Config{}

	if internal.IsEmpty(params.CACert) {
		// Server cert verification will be disabled.
		tlsConf.InsecureSkipVerify = true
		return &tlsConf, nil
	}
	certPool := x509.NewCertPool()
	ca, err := ioutil.ReadFile(params.CACert)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read the CA certificate")
	}

	if ok := certPool.AppendCertsFromPEM(ca); !ok {
		return nil, errors.New("failed to append the CA certificate to the pool")
	}

	tlsConf.RootCAs = certPool

	return &tlsConf, nil
}
