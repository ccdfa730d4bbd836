/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package cas

import "fmt"

const usage = `Usage: %s
          [-h] [-V] [-v] [-d[=<file>]] [-p] [-m=<model>]
          [-i=[<format>,]<args>] [-o[=[<format>,]<args>] <file or device path>]
          [-c=<conversion>] [-C=<conversion>] [-l[=<args>]] [-t]
          <input file or device path>

General options:
  -h, --help        Display the help page of the (sub)command and quit.
  -V, --version     Display the version message and quit.
  -v, --verbose     Display the utility version before all.
  -d[=<file path>], --debug[=<file path>]
                    Allow debug logs, and optionally place them in the
                    provided file.

Pipeline-related configuration:

  -i=[<format>],<args>, --input=[<format>],<args>
                    Set the format and optional parameters for the input.
  -c=<conv>[, ...], --convert=<conv>[, ...]
                    Operate one or more conversions between input and
                    optional listing.
  -l[=<args>], --list[=<args>]
                    Enable file contents listing, and optionally set the
                    general listing options.
  -t, --terse       Enable file type listing.
  -C=<conv>[, ...], --convert-after=<conv>[, ...]
                    Operate one or more conversions between optional
                    listing and output.
  -o[=[<format>,]<args>] <file or device path>,
  --output[=[<format>,]<args>] <file or device path>
                    Enable output, and set the output file or device path,
                    optional format and parameters.

Other options:
  -p, --pager       Invoke a terminal pager to view the list.
  -m=<model>, --model=<model>
                    Model of the calculator for or with which to operate
                    the file or serial port manipulations.

Defaults are read from ~/.casrc, or /etc/system.casrc when it is absent.
`

// Usage returns the help page of CaS for the given command name.
func Usage(command string) string {
	return fmt.Sprintf(usage, command)
}

// Banner returns the one-line identification of CaS.
func Banner(version string) string {
	return fmt.Sprintf("CaS - from cahute %s", version)
}

// VersionMessage returns the text printed by -V.
func VersionMessage(version string) string {
	return Banner(version) + `

This is free software; see the source for copying conditions.
There is NO warranty; not even for MERCHANTABILITY or
FITNESS FOR A PARTICULAR PURPOSE.
`
}
