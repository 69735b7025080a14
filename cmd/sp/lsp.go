package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/signadot/scopepath/lsp"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
)

func serveLSP(cfg *LSPConfig, cc *cli.Context, args []string) error {
	_, err := cfg.LSP.Parse(cc, args)
	if err != nil {
		return err
	}

	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			theLog.Warn("gops agent failed", "error", err)
		}
		defer agent.Close()
	}

	lsCfg := lsp.DefaultConfig()
	if cfg.ConfigFile != "" {
		lsCfg, err = lsp.LoadConfig(cfg.ConfigFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	if err := lsCfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	theLog.Info("starting language server", "keywords", lsCfg.Keywords)
	err = lsp.New(lsCfg).Serve(ctx, &stdioReadWriteCloser{
		read:  os.Stdin,
		write: os.Stdout,
	})
	if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

type stdioReadWriteCloser struct {
	read  io.Reader
	write io.Writer
}

func (s *stdioReadWriteCloser) Read(p []byte) (n int, err error) {
	return s.read.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (n int, err error) {
	return s.write.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	return nil
}
