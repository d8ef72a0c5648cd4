package meta_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"quicktimer/internal/meta"
)

var _ = Describe("Config", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "quicktimer-config")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(os.RemoveAll, dir)
	})

	writeConfig := func(content string) string {
		path := filepath.Join(dir, "config.yaml")
		Expect(os.WriteFile(path, []byte(content), 0644)).To(Succeed())
		return path
	}

	It("parses a complete configuration", func() {
		path := writeConfig(`
application:
  sentry_dsn: https://key@sentry.example.com/1
metrics:
  statsd:
    addr: 127.0.0.1:8125
    sample_rate: 0.5
reporting:
  tag: Build
`)

		cfg, err := meta.ParseConfig(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Application.SentryDSN).To(Equal("https://key@sentry.example.com/1"))
		Expect(cfg.Metrics.Statsd.Address).To(Equal("127.0.0.1:8125"))
		Expect(cfg.Metrics.Statsd.SampleRate).To(Equal(0.5))
		Expect(cfg.Reporting.Tag).To(Equal("Build"))
	})

	It("permits omitting the metrics block entirely", func() {
		path := writeConfig(`
reporting:
  tag: Build
`)

		cfg, err := meta.ParseConfig(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Metrics).To(BeNil())
	})

	It("errors on a nonexistent file", func() {
		_, err := meta.ParseConfig(filepath.Join(dir, "missing.yaml"))
		Expect(err).To(MatchError(ContainSubstring("error reading config")))
	})

	It("errors on malformed YAML", func() {
		path := writeConfig("application: [")

		_, err := meta.ParseConfig(path)
		Expect(err).To(MatchError(ContainSubstring("error parsing config")))
	})

	It("rejects a statsd block without an address", func() {
		path := writeConfig(`
metrics:
  statsd:
    sample_rate: 1.0
`)

		_, err := meta.ParseConfig(path)
		Expect(err).To(MatchError(ContainSubstring("missing metrics statsd address")))
	})

	It("rejects an out-of-range sample rate", func() {
		path := writeConfig(`
metrics:
  statsd:
    addr: 127.0.0.1:8125
    sample_rate: 1.5
`)

		_, err := meta.ParseConfig(path)
		Expect(err).To(MatchError(ContainSubstring("sample rate must be in range")))
	})
})
