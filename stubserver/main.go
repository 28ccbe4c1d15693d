package main

import (
	"flag"

	"github.com/golang/glog"
	"github.com/openwms/openwms-go/internal/restmachinery"
	"github.com/openwms/openwms-go/internal/stub"
	"github.com/openwms/openwms-go/internal/version"
)

func main() {
	// We need to parse flags for glog-related options to take effect
	flag.Parse()

	glog.Infof(
		"Starting OpenWMS stub server -- version %s -- commit %s",
		version.Version(),
		version.Commit(),
	)

	config, err := restmachinery.GetConfigFromEnvironment()
	if err != nil {
		glog.Fatal(err)
	}

	server, err := stub.NewServer(config, stub.DefaultRoles())
	if err != nil {
		glog.Fatal(err)
	}

	glog.Fatal(server.ListenAndServe())
}
