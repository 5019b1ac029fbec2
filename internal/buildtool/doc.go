// SPDX-License-Identifier: MPL-2.0

// Package buildtool drives the PyInstaller build of the ppixel application.
//
// The Builder runs entirely inside the activated virtual environment: module
// inventory and installs go through the environment's pip, compilation
// through its pyinstaller. All process execution goes through the
// CommandRunner interface so tests can run against a fake.
package buildtool
