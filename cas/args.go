/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cas builds the parameters of the CaS file and serial transfer tool
// from its command line and the casrc database.
//
// CaS reads its command line in the CAS option style. The attributes of the
// -i, -o, -l and -m options use the casrc component grammar and replace the
// "in", "out", "list" and "model" settings. Each medium is then resolved with
// its format-specific setting ("in.com", "out.ctf", ...) overriding the
// general one.
package cas

// Model is the calculator model CaS operates for.
type Model string

const (
	ModelUnknown Model = ""
	Model7700    Model = "7700"
	Model9700    Model = "9700"
	Model9750    Model = "9750"
	Model9800    Model = "9800"
	Model9850    Model = "9850"
	Model9950    Model = "9950"
	ModelAny     Model = "any"
)

// MediumType tells whether a medium is a file or a serial link.
type MediumType string

const (
	MediumUnknown MediumType = ""
	MediumFile    MediumType = "file"
	MediumCOM     MediumType = "com"
)

// Format is the casrc name of a medium format, also used as the suffix of
// format-specific settings.
type Format string

const (
	FormatCTF Format = "ctf"
	FormatCAS Format = "cas"
	FormatFXP Format = "fxp"
	FormatBMP Format = "bmp"
	FormatGIF Format = "gif"
	FormatCOM Format = "com"
)

// fileFormats lists file formats in the order their properties are checked.
var fileFormats = []Format{FormatCTF, FormatCAS, FormatFXP, FormatBMP, FormatGIF}

// HeaderFormat is the CASIOLINK header flavour of a CAS file.
type HeaderFormat string

const (
	HeaderUnknown HeaderFormat = ""
	HeaderCAS40   HeaderFormat = "cas40"
	HeaderCAS50   HeaderFormat = "cas50"
	HeaderRaw     HeaderFormat = "raw"
)

// Parity is the serial parity setting.
type Parity string

const (
	ParityOff  Parity = "off"
	ParityEven Parity = "even"
	ParityOdd  Parity = "odd"
)

// Protocol is the CASIOLINK variant spoken on a serial link.
type Protocol string

const (
	ProtocolDefault Protocol = ""
	ProtocolCAS40   Protocol = "cas40"
	ProtocolCAS50   Protocol = "cas50"
	ProtocolCAS100  Protocol = "cas100"
	ProtocolCAS300  Protocol = "cas300"
)

// NumberFormat is how numbers are shown when listing file contents.
type NumberFormat string

const (
	NumberBasic NumberFormat = "basic"
	NumberSpace NumberFormat = "space"
	NumberDec   NumberFormat = "dec"
	NumberOct   NumberFormat = "oct"
	NumberHex   NumberFormat = "hex"
)

// FileType is a data type conversions operate on.
type FileType string

const (
	FileSSMono  FileType = "ssmono"
	FileSSCol   FileType = "sscol"
	FileOldProg FileType = "oldprog"
	FileEditor  FileType = "editor"
)

// Serial holds the parameters of a serial link.
type Serial struct {
	Speed     int      `yaml:"speed,omitempty" json:"speed,omitempty"`
	Parity    Parity   `yaml:"parity" json:"parity"`
	StopBits  int      `yaml:"stopBits,omitempty" json:"stopBits,omitempty"`
	DTR       bool     `yaml:"dtr" json:"dtr"`
	RTS       bool     `yaml:"rts" json:"rts"`
	Protocol  Protocol `yaml:"protocol,omitempty" json:"protocol,omitempty"`
	Pause     bool     `yaml:"pause" json:"pause"`
	Inline    bool     `yaml:"inline" json:"inline"`
	Overwrite bool     `yaml:"overwrite" json:"overwrite"`
}

// FileOptions holds the format-specific options of a file medium.
type FileOptions struct {
	// Glossary and Nice apply to CTF files.
	Glossary bool `yaml:"glossary,omitempty" json:"glossary,omitempty"`
	Nice     bool `yaml:"nice,omitempty" json:"nice,omitempty"`

	// HeaderFormat and Status apply to CAS files.
	HeaderFormat HeaderFormat `yaml:"headerFormat,omitempty" json:"headerFormat,omitempty"`
	Status       bool         `yaml:"status,omitempty" json:"status,omitempty"`

	// Inverse applies to BMP and GIF files.
	Inverse bool `yaml:"inverse,omitempty" json:"inverse,omitempty"`
}

// Medium is an input or output of a CaS run.
type Medium struct {
	Type   MediumType   `yaml:"type" json:"type"`
	Format Format       `yaml:"format" json:"format"`
	Path   string       `yaml:"path" json:"path"`
	Serial *Serial      `yaml:"serial,omitempty" json:"serial,omitempty"`
	File   *FileOptions `yaml:"file,omitempty" json:"file,omitempty"`
}

// ListFormat holds the listing options of one kind of data.
type ListFormat struct {
	NumberFormat NumberFormat `yaml:"numberFormat" json:"numberFormat"`
	Nice         bool         `yaml:"nice" json:"nice"`
	Password     bool         `yaml:"password" json:"password"`
}

// Conversion converts data of one type into another, before the listing or
// after it.
type Conversion struct {
	Source FileType `yaml:"source" json:"source"`
	Dest   FileType `yaml:"dest" json:"dest"`
	After  bool     `yaml:"after" json:"after"`
}

// Args are the resolved parameters of a CaS run.
type Args struct {
	Model       Model                 `yaml:"model" json:"model"`
	In          Medium                `yaml:"in" json:"in"`
	Out         *Medium               `yaml:"out,omitempty" json:"out,omitempty"`
	ListFiles   bool                  `yaml:"listFiles" json:"listFiles"`
	ListTypes   bool                  `yaml:"listTypes" json:"listTypes"`
	List        map[string]ListFormat `yaml:"list,omitempty" json:"list,omitempty"`
	Conversions []Conversion          `yaml:"conversions,omitempty" json:"conversions,omitempty"`
	Verbose     bool                  `yaml:"verbose" json:"verbose"`
	Pager       bool                  `yaml:"pager" json:"pager"`
}
