// Copyright 2026 The LUCI Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command cbt is a CLI for basic interactions with Cloud Bigtable clusters,
// tables and row data.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/maruel/subcommands"
	"google.golang.org/api/option"

	"go.chromium.org/luci/auth"
	"go.chromium.org/luci/auth/client/authcli"
	"go.chromium.org/luci/auth/scopes"
	"go.chromium.org/luci/common/cli"
	"go.chromium.org/luci/common/errors"
	log "go.chromium.org/luci/common/logging"
	"go.chromium.org/luci/common/logging/gologger"
	"go.chromium.org/luci/hardcoded/chromeinfra"

	"go.chromium.org/bigtable"
)

type application struct {
	cli.Application

	authOpts auth.Options

	project string
	zone    string
	cluster string
}

func getApplication(base subcommands.Application) (*application, context.Context) {
	app := base.(*application)
	return app, app.Context(context.Background())
}

func (app *application) addFlags(fs *flag.FlagSet) {
	fs.StringVar(&app.project, "project", "", "Cloud project ID (required)")
	fs.StringVar(&app.zone, "zone", "", "Cloud Bigtable zone, e.g. us-central1-b")
	fs.StringVar(&app.cluster, "cluster", "", "Cloud Bigtable cluster name")
}

func (app *application) clientOptions(c context.Context) ([]option.ClientOption, error) {
	a := auth.NewAuthenticator(c, auth.SilentLogin, app.authOpts)
	tsrc, err := a.TokenSource()
	if err != nil {
		return nil, errors.Fmt("getting token source: %w", err)
	}
	return []option.ClientOption{option.WithTokenSource(tsrc)}, nil
}

func (app *application) getClient(c context.Context) (*bigtable.Client, error) {
	opts, err := app.clientOptions(c)
	if err != nil {
		return nil, err
	}
	return bigtable.NewClient(c, app.project, app.zone, app.cluster, opts...)
}

func (app *application) getAdminClient(c context.Context) (*bigtable.AdminClient, error) {
	opts, err := app.clientOptions(c)
	if err != nil {
		return nil, err
	}
	return bigtable.NewAdminClient(c, app.project, app.zone, app.cluster, opts...)
}

func (app *application) getClusterAdminClient(c context.Context) (*bigtable.ClusterAdminClient, error) {
	opts, err := app.clientOptions(c)
	if err != nil {
		return nil, err
	}
	return bigtable.NewClusterAdminClient(c, app.project, opts...)
}

func renderErr(c context.Context, err error) {
	log.Errorf(c, "Error encountered during operation: %s", err)
}

func mainImpl(defaultAuthOpts auth.Options, args []string) int {
	logConfig := log.Config{
		Level: log.Warning,
	}

	defaultAuthOpts.Scopes = []string{scopes.Email, bigtable.Scope, bigtable.AdminScope}
	var authFlags authcli.Flags

	app := application{
		Application: cli.Application{
			Name:  "cbt",
			Title: "Cloud Bigtable CLI",
			Context: func(c context.Context) context.Context {
				return logConfig.Set(gologger.StdConfig.Use(c))
			},

			Commands: []*subcommands.Command{
				subcommands.CmdHelp,

				&subcommandListZones,
				&subcommandListClusters,
				&subcommandListTables,
				&subcommandCreateTable,
				&subcommandDeleteTable,
				&subcommandCreateFamily,
				&subcommandDeleteFamily,
				&subcommandSetGCPolicy,
				&subcommandLookup,
				&subcommandRead,
				&subcommandSet,
				&subcommandCount,

				authcli.SubcommandLogin(defaultAuthOpts, "auth-login", false),
				authcli.SubcommandLogout(defaultAuthOpts, "auth-logout", false),
				authcli.SubcommandInfo(defaultAuthOpts, "auth-info", false),
			},
		},
	}

	fs := flag.NewFlagSet("flags", flag.ExitOnError)
	app.addFlags(fs)
	logConfig.AddFlags(fs)
	authFlags.Register(fs, defaultAuthOpts)
	fs.Parse(args)

	if app.project == "" {
		fmt.Fprintln(os.Stderr, "Missing required argument (-project).")
		return 1
	}

	var err error
	app.authOpts, err = authFlags.Options()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to create auth options:", err)
		return 1
	}

	return subcommands.Run(&app, fs.Args())
}

func main() {
	os.Exit(mainImpl(chromeinfra.DefaultAuthOptions(), os.Args[1:]))
}

////////////////////////////////////////////////////////////////////////////////
// Subcommand: zones
////////////////////////////////////////////////////////////////////////////////

var subcommandListZones = subcommands.Command{
	UsageLine: "zones",
	ShortDesc: "Lists the zones available in the project.",
	CommandRun: func() subcommands.CommandRun {
		return &cmdRunListZones{}
	},
}

type cmdRunListZones struct {
	subcommands.CommandRunBase
}

func (cmd *cmdRunListZones) Run(baseApp subcommands.Application, args []string, _ subcommands.Env) int {
	app, c := getApplication(baseApp)

	client, err := app.getClusterAdminClient(c)
	if err != nil {
		renderErr(c, err)
		return 1
	}
	defer client.Close()

	zones, err := client.Zones(c)
	if err != nil {
		renderErr(c, err)
		return 1
	}
	for _, z := range zones {
		fmt.Println(z)
	}
	return 0
}

////////////////////////////////////////////////////////////////////////////////
// Subcommand: clusters
////////////////////////////////////////////////////////////////////////////////

var subcommandListClusters = subcommands.Command{
	UsageLine: "clusters",
	ShortDesc: "Lists the clusters in the project.",
	CommandRun: func() subcommands.CommandRun {
		return &cmdRunListClusters{}
	},
}

type cmdRunListClusters struct {
	subcommands.CommandRunBase
}

func (cmd *cmdRunListClusters) Run(baseApp subcommands.Application, args []string, _ subcommands.Env) int {
	app, c := getApplication(baseApp)

	client, err := app.getClusterAdminClient(c)
	if err != nil {
		renderErr(c, err)
		return 1
	}
	defer client.Close()

	clusters, err := client.Clusters(c)
	if err != nil {
		var pu bigtable.ErrPartiallyUnavailable
		if !errors.As(err, &pu) {
			renderErr(c, err)
			return 1
		}
		log.Warningf(c, "Some zones were unavailable: %s", strings.Join(pu.Zones, ", "))
	}
	for _, cl := range clusters {
		fmt.Printf("%s/%s\t%q\t%d serve nodes\n", cl.Zone, cl.Name, cl.DisplayName, cl.ServeNodes)
	}
	return 0
}

////////////////////////////////////////////////////////////////////////////////
// Subcommand: ls
////////////////////////////////////////////////////////////////////////////////

var subcommandListTables = subcommands.Command{
	UsageLine: "ls",
	ShortDesc: "Lists the tables in the cluster.",
	CommandRun: func() subcommands.CommandRun {
		return &cmdRunListTables{}
	},
}

type cmdRunListTables struct {
	subcommands.CommandRunBase
}

func (cmd *cmdRunListTables) Run(baseApp subcommands.Application, args []string, _ subcommands.Env) int {
	app, c := getApplication(baseApp)

	client, err := app.getAdminClient(c)
	if err != nil {
		renderErr(c, err)
		return 1
	}
	defer client.Close()

	tables, err := client.Tables(c)
	if err != nil {
		renderErr(c, err)
		return 1
	}
	for _, tbl := range tables {
		fmt.Println(tbl)
	}
	return 0
}

////////////////////////////////////////////////////////////////////////////////
// Subcommand: createtable / deletetable
////////////////////////////////////////////////////////////////////////////////

var subcommandCreateTable = subcommands.Command{
	UsageLine: "createtable <table>",
	ShortDesc: "Creates a table.",
	CommandRun: func() subcommands.CommandRun {
		return &cmdRunCreateTable{}
	},
}

type cmdRunCreateTable struct {
	subcommands.CommandRunBase
}

func (cmd *cmdRunCreateTable) Run(baseApp subcommands.Application, args []string, _ subcommands.Env) int {
	app, c := getApplication(baseApp)
	if len(args) != 1 {
		log.Errorf(c, "Expected exactly one argument (table name).")
		return 1
	}

	client, err := app.getAdminClient(c)
	if err != nil {
		renderErr(c, err)
		return 1
	}
	defer client.Close()

	if err := client.CreateTable(c, args[0]); err != nil {
		renderErr(c, err)
		return 1
	}
	return 0
}

var subcommandDeleteTable = subcommands.Command{
	UsageLine: "deletetable <table>",
	ShortDesc: "Deletes a table and all of its data.",
	CommandRun: func() subcommands.CommandRun {
		return &cmdRunDeleteTable{}
	},
}

type cmdRunDeleteTable struct {
	subcommands.CommandRunBase
}

func (cmd *cmdRunDeleteTable) Run(baseApp subcommands.Application, args []string, _ subcommands.Env) int {
	app, c := getApplication(baseApp)
	if len(args) != 1 {
		log.Errorf(c, "Expected exactly one argument (table name).")
		return 1
	}

	client, err := app.getAdminClient(c)
	if err != nil {
		renderErr(c, err)
		return 1
	}
	defer client.Close()

	if err := client.DeleteTable(c, args[0]); err != nil {
		renderErr(c, err)
		return 1
	}
	return 0
}

////////////////////////////////////////////////////////////////////////////////
// Subcommand: createfamily / deletefamily / setgcpolicy
////////////////////////////////////////////////////////////////////////////////

var subcommandCreateFamily = subcommands.Command{
	UsageLine: "createfamily <table> <family>",
	ShortDesc: "Creates a column family.",
	CommandRun: func() subcommands.CommandRun {
		return &cmdRunCreateFamily{}
	},
}

type cmdRunCreateFamily struct {
	subcommands.CommandRunBase
}

func (cmd *cmdRunCreateFamily) Run(baseApp subcommands.Application, args []string, _ subcommands.Env) int {
	app, c := getApplication(baseApp)
	if len(args) != 2 {
		log.Errorf(c, "Expected exactly two arguments (table, family).")
		return 1
	}

	client, err := app.getAdminClient(c)
	if err != nil {
		renderErr(c, err)
		return 1
	}
	defer client.Close()

	if err := client.CreateColumnFamily(c, args[0], args[1]); err != nil {
		renderErr(c, err)
		return 1
	}
	return 0
}

var subcommandDeleteFamily = subcommands.Command{
	UsageLine: "deletefamily <table> <family>",
	ShortDesc: "Deletes a column family and all of its data.",
	CommandRun: func() subcommands.CommandRun {
		return &cmdRunDeleteFamily{}
	},
}

type cmdRunDeleteFamily struct {
	subcommands.CommandRunBase
}

func (cmd *cmdRunDeleteFamily) Run(baseApp subcommands.Application, args []string, _ subcommands.Env) int {
	app, c := getApplication(baseApp)
	if len(args) != 2 {
		log.Errorf(c, "Expected exactly two arguments (table, family).")
		return 1
	}

	client, err := app.getAdminClient(c)
	if err != nil {
		renderErr(c, err)
		return 1
	}
	defer client.Close()

	if err := client.DeleteColumnFamily(c, args[0], args[1]); err != nil {
		renderErr(c, err)
		return 1
	}
	return 0
}

var subcommandSetGCPolicy = subcommands.Command{
	UsageLine: "setgcpolicy <table> <family>",
	ShortDesc: "Sets the garbage collection policy of a column family.",
	LongDesc:  "Sets the garbage collection policy of a column family. Use -max-versions and/or -max-age; both set form an intersection.",
	CommandRun: func() subcommands.CommandRun {
		cmd := &cmdRunSetGCPolicy{}
		cmd.Flags.IntVar(&cmd.maxVersions, "max-versions", 0, "Only keep the most recent N versions of each cell.")
		cmd.Flags.DurationVar(&cmd.maxAge, "max-age", 0, "Only keep cells younger than this duration.")
		return cmd
	},
}

type cmdRunSetGCPolicy struct {
	subcommands.CommandRunBase

	maxVersions int
	maxAge      time.Duration
}

func (cmd *cmdRunSetGCPolicy) Run(baseApp subcommands.Application, args []string, _ subcommands.Env) int {
	app, c := getApplication(baseApp)
	if len(args) != 2 {
		log.Errorf(c, "Expected exactly two arguments (table, family).")
		return 1
	}

	var policies []bigtable.GCPolicy
	if cmd.maxVersions > 0 {
		policies = append(policies, bigtable.MaxVersionsPolicy(cmd.maxVersions))
	}
	if cmd.maxAge > 0 {
		policies = append(policies, bigtable.MaxAgePolicy(cmd.maxAge))
	}
	var policy bigtable.GCPolicy
	switch len(policies) {
	case 0:
		log.Errorf(c, "At least one of -max-versions, -max-age is required.")
		return 1
	case 1:
		policy = policies[0]
	default:
		policy = bigtable.IntersectionPolicy(policies...)
	}

	client, err := app.getAdminClient(c)
	if err != nil {
		renderErr(c, err)
		return 1
	}
	defer client.Close()

	if err := client.SetGCPolicy(c, args[0], args[1], policy); err != nil {
		renderErr(c, err)
		return 1
	}
	return 0
}

////////////////////////////////////////////////////////////////////////////////
// Subcommand: lookup / read / set / count
////////////////////////////////////////////////////////////////////////////////

func printRow(r bigtable.Row) {
	fmt.Println(strings.Repeat("-", 40))
	fmt.Println(r.Key())

	var fams []string
	for fam := range r {
		fams = append(fams, fam)
	}
	sort.Strings(fams)
	for _, fam := range fams {
		for _, ri := range r[fam] {
			ts := ri.Timestamp.Time().UTC().Format(time.RFC3339Nano)
			fmt.Printf("  %-40s @ %s\n", ri.Column, ts)
			fmt.Printf("    %q\n", ri.Value)
		}
	}
}

var subcommandLookup = subcommands.Command{
	UsageLine: "lookup <table> <row>",
	ShortDesc: "Reads and prints a single row.",
	CommandRun: func() subcommands.CommandRun {
		return &cmdRunLookup{}
	},
}

type cmdRunLookup struct {
	subcommands.CommandRunBase
}

func (cmd *cmdRunLookup) Run(baseApp subcommands.Application, args []string, _ subcommands.Env) int {
	app, c := getApplication(baseApp)
	if len(args) != 2 {
		log.Errorf(c, "Expected exactly two arguments (table, row).")
		return 1
	}

	client, err := app.getClient(c)
	if err != nil {
		renderErr(c, err)
		return 1
	}
	defer client.Close()

	row, err := client.Open(args[0]).ReadRow(c, args[1])
	if err != nil {
		renderErr(c, err)
		return 1
	}
	printRow(row)
	return 0
}

var subcommandRead = subcommands.Command{
	UsageLine: "read <table>",
	ShortDesc: "Reads and prints rows.",
	CommandRun: func() subcommands.CommandRun {
		cmd := &cmdRunRead{}
		cmd.Flags.StringVar(&cmd.start, "start", "", "Start reading at this row.")
		cmd.Flags.StringVar(&cmd.prefix, "prefix", "", "Read rows with this prefix (overrides -start).")
		cmd.Flags.Int64Var(&cmd.limit, "limit", 0, "Read at most this many rows (0 for no limit).")
		return cmd
	},
}

type cmdRunRead struct {
	subcommands.CommandRunBase

	start  string
	prefix string
	limit  int64
}

func (cmd *cmdRunRead) Run(baseApp subcommands.Application, args []string, _ subcommands.Env) int {
	app, c := getApplication(baseApp)
	if len(args) != 1 {
		log.Errorf(c, "Expected exactly one argument (table name).")
		return 1
	}

	client, err := app.getClient(c)
	if err != nil {
		renderErr(c, err)
		return 1
	}
	defer client.Close()

	rng := bigtable.InfiniteRange(cmd.start)
	if cmd.prefix != "" {
		rng = bigtable.PrefixRange(cmd.prefix)
	}
	var opts []bigtable.ReadOption
	if cmd.limit > 0 {
		opts = append(opts, bigtable.LimitRows(cmd.limit))
	}

	err = client.Open(args[0]).ReadRows(c, rng, func(r bigtable.Row) bool {
		printRow(r)
		return true
	}, opts...)
	if err != nil {
		renderErr(c, err)
		return 1
	}
	return 0
}

var subcommandSet = subcommands.Command{
	UsageLine: "set <table> <row> <family:column=value>...",
	ShortDesc: "Sets cells of a row.",
	CommandRun: func() subcommands.CommandRun {
		return &cmdRunSet{}
	},
}

type cmdRunSet struct {
	subcommands.CommandRunBase
}

func (cmd *cmdRunSet) Run(baseApp subcommands.Application, args []string, _ subcommands.Env) int {
	app, c := getApplication(baseApp)
	if len(args) < 3 {
		log.Errorf(c, "Expected a table, a row, and at least one family:column=value.")
		return 1
	}

	mut := bigtable.NewMutation()
	for _, arg := range args[2:] {
		col, val, ok := strings.Cut(arg, "=")
		if !ok {
			log.Errorf(c, "Bad cell %q, expected family:column=value.", arg)
			return 1
		}
		fam, qual, ok := strings.Cut(col, ":")
		if !ok {
			log.Errorf(c, "Bad column %q, expected family:column.", col)
			return 1
		}
		mut.Set(fam, qual, bigtable.ServerTime, []byte(val))
	}

	client, err := app.getClient(c)
	if err != nil {
		renderErr(c, err)
		return 1
	}
	defer client.Close()

	if err := client.Open(args[0]).Apply(c, args[1], mut); err != nil {
		renderErr(c, err)
		return 1
	}
	return 0
}

var subcommandCount = subcommands.Command{
	UsageLine: "count <table>",
	ShortDesc: "Counts the rows in a table.",
	CommandRun: func() subcommands.CommandRun {
		return &cmdRunCount{}
	},
}

type cmdRunCount struct {
	subcommands.CommandRunBase
}

func (cmd *cmdRunCount) Run(baseApp subcommands.Application, args []string, _ subcommands.Env) int {
	app, c := getApplication(baseApp)
	if len(args) != 1 {
		log.Errorf(c, "Expected exactly one argument (table name).")
		return 1
	}

	client, err := app.getClient(c)
	if err != nil {
		renderErr(c, err)
		return 1
	}
	defer client.Close()

	n := 0
	err = client.Open(args[0]).ReadRows(c, bigtable.InfiniteRange(""), func(r bigtable.Row) bool {
		n++
		return true
	}, bigtable.RowFilter(bigtable.StripValueFilter()))
	if err != nil {
		renderErr(c, err)
		return 1
	}
	fmt.Println(n)
	return 0
}
