package common_test

import (
	"bytes"
	"encoding/json"
	"houseprojects/common"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
)

var _ = Describe("Logging", func() {
	AfterEach(func() {
		Expect(common.ConfigureLogging(common.LogConfig{})).To(BeNil())
	})

	It("should add service name to every entry", func() {
		Expect(common.ConfigureLogging(common.LogConfig{Level: "debug"})).To(BeNil())
		buf := &bytes.Buffer{}
		logrus.SetOutput(buf)

		logrus.Debug("hello")

		entry := map[string]interface{}{}
		Expect(json.Unmarshal(buf.Bytes(), &entry)).To(BeNil())
		Expect(entry["serviceName"]).To(Equal(common.ServiceName))
		Expect(entry["msg"]).To(Equal("hello"))
		Expect(entry["level"]).To(Equal("debug"))
	})

	It("should reject unknown level", func() {
		Expect(common.ConfigureLogging(common.LogConfig{Level: "loud"})).ToNot(BeNil())
	})

	It("should write to log file when configured", func() {
		dir, err := os.MkdirTemp("", "houseprojects-log")
		Expect(err).To(BeNil())
		defer os.RemoveAll(dir)

		file := filepath.Join(dir, "service.log")
		Expect(common.ConfigureLogging(common.LogConfig{Format: "text", File: file, MaxSizeMB: 1})).To(BeNil())
		logrus.Info("written to file")

		content, err := os.ReadFile(file)
		Expect(err).To(BeNil())
		Expect(string(content)).To(ContainSubstring("written to file"))
	})
})
