package cmd

import (
	"os"
	"path/filepath"

	"arcc/build"
	"arcc/common"
	"arcc/logging"
	"arcc/mods"

	"github.com/ComedicChimera/olive"
	"github.com/davecgh/go-spew/spew"
)

// Execute runs the main `arcc` application
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("arcc", "arcc compiles source files to Arc IR", true)
	cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, []string{"silent", "error", "warn", "verbose"})

	buildCmd := cli.AddSubcommand("build", "compile a source file", true)
	buildCmd.AddPrimaryArg("file-path", "the path to the source file to compile", true)
	buildCmd.AddStringArg("output", "o", "the path to write the compiled IR to", false)
	buildCmd.AddFlag("dump-ast", "da", "print the parsed syntax tree instead of compiling")
	buildCmd.AddFlag("summary", "s", "print a table of the compiled functions")

	initCmd := cli.AddSubcommand("init", "create a new project in the working directory", true)
	initCmd.AddPrimaryArg("project-name", "the name of the project", true)

	cli.AddSubcommand("repl", "compile statements interactively", false)
	cli.AddSubcommand("version", "print the arcc version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		logging.PrintErrorMessage("CLI Usage Error", err)
		return
	}

	loglevel := ""
	if llArg, ok := result.Arguments["loglevel"]; ok {
		loglevel = llArg.(string)
	}

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "build":
		execBuildCommand(subResult, loglevel)
	case "init":
		execInitCommand(subResult)
	case "repl":
		execReplCommand()
	case "version":
		logging.PrintInfoMessage("arcc Version", common.ArccVersion)
	}
}

// execBuildCommand executes the build subcommand and handles all errors
func execBuildCommand(result *olive.ArgParseResult, loglevel string) {
	// extract CLI data
	fileRelPath, _ := result.PrimaryArg()

	filePath, err := filepath.Abs(fileRelPath)
	if err != nil {
		logging.PrintErrorMessage("Path Error", err)
		return
	}

	// load the configuration of the project containing the file
	cfg, err := mods.LoadConfig(filepath.Dir(filePath))
	if err != nil {
		logging.PrintErrorMessage("Project Load Error", err)
		return
	}

	// the command line log level overrides the project's
	if loglevel == "" {
		loglevel = cfg.LogLevel
	}

	logging.Initialize(loglevel)

	c, err := build.NewCompiler(cfg)
	if err != nil {
		logging.LogConfigError("Cache", err.Error())
		return
	}

	if result.HasFlag("dump-ast") {
		prog, src, err := c.ParseFile(filePath)
		if err != nil {
			logging.LogCompileError(fileRelPath, src, err)
			return
		}

		spew.Dump(prog)
		return
	}

	logging.LogCompileHeader(filepath.Base(filePath), cfg.CacheSize > 0)
	defer logging.LogFinished()

	if filepath.Ext(filePath) != common.SrcFileExtension {
		logging.LogBuildWarning("Source", "`"+fileRelPath+"` does not have the "+common.SrcFileExtension+" extension")
	}

	out, src, err := c.CompileFile(filePath)
	if err != nil {
		logging.LogCompileError(fileRelPath, src, err)
		return
	}

	outPath := ""
	if outArg, ok := result.Arguments["output"]; ok {
		outPath = outArg.(string)
	}

	if err := c.WriteOutput(out, c.OutputPath(filePath, outPath)); err != nil {
		logging.LogConfigError("Output", err.Error())
		return
	}

	if result.HasFlag("summary") {
		displaySummary(os.Stdout, out)
	}
}

// execInitCommand executes the `init` subcommand
func execInitCommand(result *olive.ArgParseResult) {
	workDir, err := os.Getwd()
	if err != nil {
		logging.PrintErrorMessage("Path Error", err)
		return
	}

	projectName, _ := result.PrimaryArg()
	if err := mods.InitProject(projectName, workDir); err != nil {
		logging.PrintErrorMessage("Project Init Error", err)
	}
}
