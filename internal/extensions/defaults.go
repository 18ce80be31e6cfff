package extensions

// Category names used by the compiled-in table.
const (
	CategoryImage      = "image"
	CategoryVideo      = "video"
	CategoryAudio      = "audio"
	CategoryDocument   = "document"
	CategoryArchive    = "archive"
	CategoryCode       = "code"
	CategoryFont       = "font"
	CategoryExecutable = "executable"
)

var defaultRecords = []Record{
	// Images
	{Extension: "jpg", Category: CategoryImage, AltName: "photo", SortDir: "jpeg"},
	{Extension: "jpeg", Category: CategoryImage, AltName: "photo"},
	{Extension: "png", Category: CategoryImage, AltName: "raster"},
	{Extension: "gif", Category: CategoryImage, AltName: "animated"},
	{Extension: "webp", Category: CategoryImage, AltName: "raster"},
	{Extension: "bmp", Category: CategoryImage, AltName: "raster", SortDir: "bitmap"},
	{Extension: "tif", Category: CategoryImage, AltName: "raster", SortDir: "tiff"},
	{Extension: "tiff", Category: CategoryImage, AltName: "raster"},
	{Extension: "heic", Category: CategoryImage, AltName: "photo"},
	{Extension: "svg", Category: CategoryImage, AltName: "vector"},
	{Extension: "ico", Category: CategoryImage, AltName: "icon"},
	{Extension: "psd", Category: CategoryImage, AltName: "project", SortDir: "photoshop"},
	{Extension: "cr2", Category: CategoryImage, AltName: "raw"},
	{Extension: "nef", Category: CategoryImage, AltName: "raw"},

	// Video
	{Extension: "mp4", Category: CategoryVideo},
	{Extension: "m4v", Category: CategoryVideo, SortDir: "mp4"},
	{Extension: "mkv", Category: CategoryVideo, SortDir: "matroska"},
	{Extension: "webm", Category: CategoryVideo},
	{Extension: "avi", Category: CategoryVideo},
	{Extension: "mov", Category: CategoryVideo, SortDir: "quicktime"},
	{Extension: "qt", Category: CategoryVideo, SortDir: "quicktime"},
	{Extension: "wmv", Category: CategoryVideo, AltName: "windows"},
	{Extension: "flv", Category: CategoryVideo, AltName: "flash"},
	{Extension: "mpg", Category: CategoryVideo, SortDir: "mpeg"},
	{Extension: "mpeg", Category: CategoryVideo},
	{Extension: "3gp", Category: CategoryVideo, AltName: "mobile"},
	{Extension: "ts", Category: CategoryVideo, AltName: "broadcast", SortDir: "mpeg-ts"},

	// Audio
	{Extension: "mp3", Category: CategoryAudio, AltName: "lossy"},
	{Extension: "aac", Category: CategoryAudio, AltName: "lossy"},
	{Extension: "m4a", Category: CategoryAudio, AltName: "lossy", SortDir: "aac"},
	{Extension: "ogg", Category: CategoryAudio, AltName: "lossy", SortDir: "vorbis"},
	{Extension: "opus", Category: CategoryAudio, AltName: "lossy"},
	{Extension: "wma", Category: CategoryAudio, AltName: "lossy"},
	{Extension: "flac", Category: CategoryAudio, AltName: "lossless"},
	{Extension: "alac", Category: CategoryAudio, AltName: "lossless"},
	{Extension: "wav", Category: CategoryAudio, AltName: "uncompressed", SortDir: "wave"},
	{Extension: "aiff", Category: CategoryAudio, AltName: "uncompressed"},
	{Extension: "mid", Category: CategoryAudio, SortDir: "midi"},
	{Extension: "midi", Category: CategoryAudio},

	// Documents
	{Extension: "pdf", Category: CategoryDocument},
	{Extension: "txt", Category: CategoryDocument, AltName: "text"},
	{Extension: "md", Category: CategoryDocument, AltName: "text", SortDir: "markdown"},
	{Extension: "rtf", Category: CategoryDocument, AltName: "text"},
	{Extension: "doc", Category: CategoryDocument, AltName: "office", SortDir: "word"},
	{Extension: "docx", Category: CategoryDocument, AltName: "office", SortDir: "word"},
	{Extension: "odt", Category: CategoryDocument, AltName: "office", SortDir: "writer"},
	{Extension: "xls", Category: CategoryDocument, AltName: "spreadsheet", SortDir: "excel"},
	{Extension: "xlsx", Category: CategoryDocument, AltName: "spreadsheet", SortDir: "excel"},
	{Extension: "ods", Category: CategoryDocument, AltName: "spreadsheet", SortDir: "calc"},
	{Extension: "csv", Category: CategoryDocument, AltName: "spreadsheet"},
	{Extension: "ppt", Category: CategoryDocument, AltName: "presentation", SortDir: "powerpoint"},
	{Extension: "pptx", Category: CategoryDocument, AltName: "presentation", SortDir: "powerpoint"},
	{Extension: "odp", Category: CategoryDocument, AltName: "presentation", SortDir: "impress"},
	{Extension: "epub", Category: CategoryDocument, AltName: "ebook"},
	{Extension: "mobi", Category: CategoryDocument, AltName: "ebook"},

	// Archives
	{Extension: "zip", Category: CategoryArchive},
	{Extension: "rar", Category: CategoryArchive},
	{Extension: "7z", Category: CategoryArchive, SortDir: "7zip"},
	{Extension: "tar", Category: CategoryArchive, AltName: "tarball"},
	{Extension: "gz", Category: CategoryArchive, AltName: "compressed", SortDir: "gzip"},
	{Extension: "tgz", Category: CategoryArchive, AltName: "tarball", SortDir: "gzip"},
	{Extension: "bz2", Category: CategoryArchive, AltName: "compressed", SortDir: "bzip2"},
	{Extension: "xz", Category: CategoryArchive, AltName: "compressed"},
	{Extension: "zst", Category: CategoryArchive, AltName: "compressed", SortDir: "zstd"},
	{Extension: "iso", Category: CategoryArchive, AltName: "disk-image"},
	{Extension: "dmg", Category: CategoryArchive, AltName: "disk-image"},

	// Source code
	{Extension: "go", Category: CategoryCode, SortDir: "golang"},
	{Extension: "rs", Category: CategoryCode, SortDir: "rust"},
	{Extension: "c", Category: CategoryCode},
	{Extension: "h", Category: CategoryCode, AltName: "header", SortDir: "c"},
	{Extension: "cpp", Category: CategoryCode},
	{Extension: "hpp", Category: CategoryCode, AltName: "header", SortDir: "cpp"},
	{Extension: "py", Category: CategoryCode, SortDir: "python"},
	{Extension: "js", Category: CategoryCode, AltName: "web", SortDir: "javascript"},
	{Extension: "tsx", Category: CategoryCode, AltName: "web", SortDir: "typescript"},
	{Extension: "html", Category: CategoryCode, AltName: "web"},
	{Extension: "css", Category: CategoryCode, AltName: "web"},
	{Extension: "java", Category: CategoryCode},
	{Extension: "rb", Category: CategoryCode, SortDir: "ruby"},
	{Extension: "sh", Category: CategoryCode, AltName: "script", SortDir: "shell"},
	{Extension: "json", Category: CategoryCode, AltName: "data"},
	{Extension: "yaml", Category: CategoryCode, AltName: "data"},
	{Extension: "yml", Category: CategoryCode, AltName: "data", SortDir: "yaml"},
	{Extension: "toml", Category: CategoryCode, AltName: "data"},
	{Extension: "sql", Category: CategoryCode, AltName: "data"},

	// Fonts
	{Extension: "ttf", Category: CategoryFont, AltName: "truetype"},
	{Extension: "otf", Category: CategoryFont, AltName: "opentype"},
	{Extension: "woff", Category: CategoryFont, AltName: "web"},
	{Extension: "woff2", Category: CategoryFont, AltName: "web"},

	// Executables and installers
	{Extension: "exe", Category: CategoryExecutable, AltName: "windows"},
	{Extension: "msi", Category: CategoryExecutable, AltName: "windows", SortDir: "installer"},
	{Extension: "deb", Category: CategoryExecutable, AltName: "linux", SortDir: "debian"},
	{Extension: "rpm", Category: CategoryExecutable, AltName: "linux"},
	{Extension: "appimage", Category: CategoryExecutable, AltName: "linux"},
	{Extension: "apk", Category: CategoryExecutable, AltName: "android"},
}

var defaultTable = MustNew(defaultRecords...)

// Default returns the compiled-in table. The returned table is shared and
// must be treated as read-only, which its API enforces.
func Default() *Table {
	return defaultTable
}
