package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/buildbarn/bb-paged-buffer/pkg/paging"
	"github.com/buildbarn/bb-paged-buffer/pkg/util"
	"golang.org/x/sync/errgroup"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// A small utility that builds paged buffers from sequences of integers
// listed in its configuration file. The first buffer has all of the
// other buffers appended to it, after which its contents are printed
// through random access.
//
// When a diagnostics listen address is configured, block allocations
// and faults can be inspected through Prometheus until the process is
// terminated.

type applicationConfiguration struct {
	Buffer                       paging.BufferConfiguration `json:"buffer"`
	Sequences                    [][]int64                  `json:"sequences"`
	DiagnosticsHTTPListenAddress string                     `json:"diagnosticsHttpListenAddress"`
}

func main() {
	if len(os.Args) != 2 {
		log.Fatal("Usage: bb_paged_buffer bb_paged_buffer.jsonnet")
	}
	var configuration applicationConfiguration
	if err := util.UnmarshalConfigurationFromFile(os.Args[1], &configuration); err != nil {
		log.Fatal(util.StatusWrapf(err, "Failed to read configuration from %s", os.Args[1]))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	group, groupCtx := errgroup.WithContext(ctx)

	if listenAddress := configuration.DiagnosticsHTTPListenAddress; listenAddress != "" {
		server := &http.Server{
			Addr:    listenAddress,
			Handler: util.NewDiagnosticsHTTPRouter(),
		}
		group.Go(func() error {
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return util.StatusWrap(err, "Diagnostics HTTP server failed")
			}
			return nil
		})
		group.Go(func() error {
			<-groupCtx.Done()
			return server.Shutdown(context.Background())
		})
	}

	group.Go(func() error {
		return runSequences(&configuration)
	})

	if err := group.Wait(); err != nil {
		log.Fatal("Fatal error: ", err)
	}
}

func runSequences(configuration *applicationConfiguration) error {
	if len(configuration.Sequences) == 0 {
		return status.Error(codes.InvalidArgument, "No sequences provided")
	}

	buffers := make([]*paging.Buffer[int64], 0, len(configuration.Sequences))
	for i, sequence := range configuration.Sequences {
		name := fmt.Sprintf("sequence%d", i)
		buffer, err := paging.NewBufferFromConfiguration[int64](&configuration.Buffer, name)
		if err != nil {
			return util.StatusWrapf(err, "Failed to create buffer %#v", name)
		}
		if err := buffer.SetData(sequence); err != nil {
			return util.StatusWrapf(err, "Failed to set contents of buffer %#v", name)
		}
		log.Printf("Buffer %#v: Set data to %v, %s", name, sequence, buffer)
		buffers = append(buffers, buffer)
	}

	target := buffers[0]
	for i, buffer := range buffers[1:] {
		if err := target.Append(buffer); err != nil {
			return util.StatusWrapf(err, "Failed to append buffer \"sequence%d\"", i+1)
		}
		log.Printf("Buffer \"sequence0\": Appended %d element(s), %s", buffer.GetLength(), target)
	}

	for i := 0; i < target.GetLength(); i++ {
		value, err := target.At(i)
		if err != nil {
			return util.StatusWrapf(err, "Failed to read element %d", i)
		}
		log.Printf("sequence0[%d] = %d", i, value)
	}
	return nil
}
