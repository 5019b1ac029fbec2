// SPDX-License-Identifier: EPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	SelfResolveFailedId Id = iota + 1
	EnvNotFoundId
	ActivationFailedId
	EntryPointNotFoundId
	ExecFailedId
	ModulesMissingId
	CompileFailedId
	ConfigLoadFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.extLinks) > 0 {
		extraMd += "\n\n## See also:\n"
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]\n"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	selfResolveFailedIssue = &Issue{
		id: SelfResolveFailedId,
		mdMsg: `
# Cannot determine the launcher's location!

The launcher resolves its own path (following symlinks) to find the
application directory, and that resolution failed.

## Things you can try:
- Check that the launcher file still exists where the symlink points
- Re-install the application to repair broken symlinks`,
	}

	envNotFoundIssue = &Issue{
		id: EnvNotFoundId,
		mdMsg: `
# No virtual environment found!

The launcher expects a virtual environment next to itself.

## Expected layout:
~~~
<app dir>/
  ppixel          (this launcher)
  run.py          (application entry point)
  .venv/          (virtual environment)
~~~

## Things you can try:
- Create the environment:
~~~
$ python -m venv .venv
~~~

- Install the application dependencies:
~~~
$ .venv/bin/pip install -r requirements.txt
~~~`,
		extLinks: []HttpLink{"https://docs.python.org/3/library/venv.html"},
	}

	activationFailedIssue = &Issue{
		id: ActivationFailedId,
		mdMsg: `
# Environment activation failed!

The virtual environment exists but could not be activated. Nothing was
executed: activation is all-or-nothing.

## Common causes:
- The activation script is missing or truncated
- The environment was created by an incompatible Python version
- The environment was moved after creation (paths in pyvenv.cfg are stale)

## Things you can try:
- Recreate the environment:
~~~
$ rm -rf .venv && python -m venv .venv
$ .venv/bin/pip install -r requirements.txt
~~~`,
	}

	entryPointNotFoundIssue = &Issue{
		id: EntryPointNotFoundId,
		mdMsg: `
# Entry point not found!

The environment activated, but the application entry point is missing.

## Things you can try:
- Check that run.py sits in the same directory as the launcher
- Re-install the application if files were removed`,
	}

	execFailedIssue = &Issue{
		id: ExecFailedId,
		mdMsg: `
# Failed to start the application!

The entry point exists but could not be executed.

## Common causes:
- The environment's Python interpreter is missing or not executable
- The filesystem is mounted noexec

## Things you can try:
- Check the interpreter:
~~~
$ .venv/bin/python --version
~~~

- Recreate the environment if the interpreter is broken`,
	}

	modulesMissingIssue = &Issue{
		id: ModulesMissingId,
		mdMsg: `
# Build modules missing!

The build needs Python modules that are not installed in the environment.

## Things you can try:
- Let ppixel-build install them when prompted, or install manually:
~~~
$ .venv/bin/pip install pyinstaller pillow numpy
~~~`,
	}

	compileFailedIssue = &Issue{
		id: CompileFailedId,
		mdMsg: `
# Compilation failed!

PyInstaller could not produce the executable.

## Things you can try:
- Re-run with verbose output:
~~~
$ ppixel-build --verbose build
~~~

- Check that run.py imports cleanly inside the environment
- Remove stale build residue and retry:
~~~
$ ppixel-build clean
~~~`,
		extLinks: []HttpLink{"https://pyinstaller.org/en/stable/"},
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the launcher configuration file.

## Configuration file locations:
- Linux: ~/.config/ppixel/launcher.toml
- macOS: ~/Library/Application Support/ppixel/launcher.toml
- Windows: %APPDATA%\ppixel\launcher.toml

## Things you can try:
- Check the TOML syntax
- Remove the file to fall back to defaults

## Example configuration:
~~~toml
env_dir = ".venv"
entry_point = "run.py"
activation = "static"
debug = false
~~~`,
	}

	issues = map[Id]*Issue{
		selfResolveFailedIssue.Id():  selfResolveFailedIssue,
		envNotFoundIssue.Id():        envNotFoundIssue,
		activationFailedIssue.Id():   activationFailedIssue,
		entryPointNotFoundIssue.Id(): entryPointNotFoundIssue,
		execFailedIssue.Id():         execFailedIssue,
		modulesMissingIssue.Id():     modulesMissingIssue,
		compileFailedIssue.Id():      compileFailedIssue,
		configLoadFailedIssue.Id():   configLoadFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
