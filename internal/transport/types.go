package transport

import "github.com/goodnatureofminers/blockinsight7000-deso/internal/deso/service/ingester"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ProgressReporter interface {
		Snapshot() ingester.Snapshot
	}
)
