package config

// SampleYAML is the canonical starter configuration: a formatter and a
// style checker, both pinned, the checker with its full argument set.
const SampleYAML = `repos:
-   repo: https://github.com/psf/black
    rev: 19.10b0
    hooks:
    -   id: black
        language_version: python3
-   repo: https://gitlab.com/pycqa/flake8
    rev: 3.7.9
    hooks:
    -   id: flake8
        language_version: python3
        args: [
            "--max-line-length=120",
            "--max-complexity=18",
            "--select=B,C,E,F,W,T4,B9",
            "--ignore=E203,C901,W503"
        ]
`

// Sample returns the parsed and validated sample configuration.
func Sample() (*Config, error) {
	return LoadFromBytes([]byte(SampleYAML))
}
