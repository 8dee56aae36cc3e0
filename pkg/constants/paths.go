package constants

// Marker files that must exist in the working directory before any
// deletion is attempted. Their presence proves we are at the root of a
// kotaemon-style application checkout.
const (
	MarkerAppFile      = "app.py"
	MarkerSettingsFile = "flowsettings.py"
)

// KeepListFile is an optional file at the project root holding wildcard
// patterns for paths that must never be deleted.
const KeepListFile = ".cleankeep"

// LogDirName and LogFileName locate the rotating audit log under the
// user cache directory, outside the tree being cleaned.
const (
	LogDirName  = "kotaclean"
	LogFileName = "kotaclean.log"
)

// User data removed only in everything mode.
var UserDataDirs = []string{
	"ktem_app_data",
	"gradio_tmp",
	"storage",
}

// Fixed top-level paths removed in every mode.
var (
	InstallDirs = []string{"install_dir"}
	BuildDirs   = []string{"build", "dist"}
	CacheDirs   = []string{".pytest_cache", ".mypy_cache", ".ruff_cache"}
	CacheFiles  = []string{".coverage"}
	LogDirs     = []string{"logs"}
	EditorDirs  = []string{".vscode", ".idea"}
)

// Names and globs swept recursively under the root.
var (
	BytecodeFileGlobs = []string{"*.pyc", "*.pyo", "*.pyd"}
	EditorFileGlobs   = []string{"*.swp", "*.swo", ".DS_Store", "Thumbs.db"}
	TempFileGlobs     = []string{"*.tmp", "*.temp", "*~"}
	VenvDirNames      = []string{"venv", ".venv", "env"}
)

const (
	BytecodeDirName  = "__pycache__"
	PackagingDirGlob = "*.egg-info"
	NotebookDirName  = ".ipynb_checkpoints"
	EnvFileName      = ".env"
	EnvExampleName   = ".env.example"
	LogFileGlob      = "*.log"
)
