package config

const (
	defaultConfigPath     = "~/.config/filesort/config.toml"
	projectConfigName     = "filesort.toml"
	defaultLogDir         = "~/.local/share/filesort/logs"
	defaultLockDir        = "~/.local/share/filesort/locks"
	defaultNestingLevel   = 2
	defaultBenchmarkFiles = 10000
	defaultBenchmarkDir   = "benchmark"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:  defaultLogDir,
			LockDir: defaultLockDir,
		},
		Sort: Sort{
			NestingLevel: defaultNestingLevel,
		},
		Benchmark: Benchmark{
			Files:   defaultBenchmarkFiles,
			DirName: defaultBenchmarkDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
