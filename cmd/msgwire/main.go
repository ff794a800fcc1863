package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/indigo-web/msgwire/config"
	"github.com/indigo-web/msgwire/serializer"
	"github.com/indigo-web/msgwire/stream"
	"github.com/rs/zerolog"
)

func main() {
	logger := initLogger("msgwire")

	if err := run(os.Args[1:], os.Stdin, os.Stdout, logger); err != nil {
		logger.Error().Err(err).Msg("failed")
		os.Exit(1)
	}
}

func initLogger(app string) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(output).With().Timestamp().Str("app", app).Logger()
}

func run(args []string, stdin io.Reader, stdout io.Writer, logger zerolog.Logger) error {
	flags := flag.NewFlagSet("msgwire", flag.ContinueOnError)
	kind := flags.String("kind", "request", "message kind: request|response")
	out := flags.String("out", "text", "output format: text|json")
	configPath := flags.String("config", "", "path to a TOML config file")
	verbose := flags.Bool("v", false, "log at debug level")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *verbose {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	cfg := config.Default()
	if len(*configPath) > 0 {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}

		cfg = loaded
	}

	src, closer, err := open(flags.Arg(0), stdin)
	if err != nil {
		return err
	}
	defer closer()

	opts := []serializer.Option{serializer.WithConfig(cfg), serializer.WithLogger(logger)}
	var result []byte

	switch *kind {
	case "request":
		result, err = convertRequest(src, *out, opts)
	case "response":
		result, err = convertResponse(src, *out, opts)
	default:
		return fmt.Errorf("unknown kind: %s", *kind)
	}

	if err != nil {
		return err
	}

	_, err = stdout.Write(result)

	return err
}

// open returns the file, if the path is given. Otherwise, the stdin is read whole, as
// messages can be parsed only from seekable streams.
func open(path string, stdin io.Reader) (io.ReadSeeker, func(), error) {
	if len(path) > 0 {
		file, err := os.Open(path)
		if err != nil {
			return nil, nil, err
		}

		return file, func() { _ = file.Close() }, nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, nil, err
	}

	return stream.NewMemory(data), func() {}, nil
}

func convertRequest(src io.Reader, format string, opts []serializer.Option) ([]byte, error) {
	request, err := serializer.NewRequestString(opts...).DecodeStream(src)
	if err != nil {
		return nil, err
	}

	switch format {
	case "text":
		text, err := serializer.NewRequestString(opts...).Encode(request)
		return []byte(text), err
	case "json":
		return serializer.NewRequestArray().ToJSON(request)
	default:
		return nil, fmt.Errorf("unknown output format: %s", format)
	}
}

func convertResponse(src io.Reader, format string, opts []serializer.Option) ([]byte, error) {
	response, err := serializer.NewResponseString(opts...).DecodeStream(src)
	if err != nil {
		return nil, err
	}

	switch format {
	case "text":
		text, err := serializer.NewResponseString(opts...).Encode(response)
		return []byte(text), err
	case "json":
		return serializer.NewResponseArray().ToJSON(response)
	default:
		return nil, fmt.Errorf("unknown output format: %s", format)
	}
}
