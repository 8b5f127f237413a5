package main

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("asciiart", func() {
	var (
		dir, wd        string
		stdout, stderr bytes.Buffer
	)

	writePNG := func(name string, img image.Image) string {
		path := filepath.Join(dir, name)
		f, err := os.Create(path)
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()
		Expect(png.Encode(f, img)).To(Succeed())
		return path
	}

	BeforeEach(func() {
		var err error
		wd, err = os.Getwd()
		Expect(err).NotTo(HaveOccurred())
		dir, err = os.MkdirTemp("", "asciiart-cmd")
		Expect(err).NotTo(HaveOccurred())
		Expect(os.Chdir(dir)).To(Succeed())
		stdout.Reset()
		stderr.Reset()
	})

	AfterEach(func() {
		Expect(os.Chdir(wd)).To(Succeed())
		os.RemoveAll(dir)
	})

	It("prints usage and exits 1 without an image", func() {
		Expect(run([]string{"asciiart"}, &stdout, &stderr)).To(Equal(1))
		Expect(stderr.String()).To(Equal("Usage: asciiart <image_file>\nExample: asciiart image.jpg\n"))
		Expect(stdout.String()).To(BeEmpty())
	})

	It("exits 1 and writes nothing when the image cannot be decoded", func() {
		Expect(run([]string{"asciiart", "missing.png"}, &stdout, &stderr)).To(Equal(1))
		Expect(stderr.String()).To(ContainSubstring("cannot load image"))

		_, err := os.Stat("output")
		Expect(os.IsNotExist(err)).To(BeTrue())
		_, err = os.Stat("ASCII_Art.txt")
		Expect(os.IsNotExist(err)).To(BeTrue())
	})

	It("writes output/ASCII_Art.txt", func() {
		// A zeroed RGBA is transparent black; make it opaque.
		img := image.NewRGBA(image.Rect(0, 0, 8, 16))
		for i := 3; i < len(img.Pix); i += 4 {
			img.Pix[i] = 0xff
		}
		path := writePNG("black.png", img)

		Expect(run([]string{"asciiart", path}, &stdout, &stderr)).To(Equal(0))
		Expect(stdout.String()).To(ContainSubstring("Loaded image: 8x16 channels: 3"))
		Expect(stdout.String()).To(ContainSubstring("ASCII art successfully saved to: output/ASCII_Art.txt"))

		data, err := os.ReadFile(filepath.Join("output", "ASCII_Art.txt"))
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal("##\n##\n"))
	})

	It("falls back to the working directory", func() {
		Expect(os.WriteFile("output", []byte("not a directory"), 0644)).To(Succeed())
		path := writePNG("gray.png", image.NewGray(image.Rect(0, 0, 4, 8)))

		Expect(run([]string{"asciiart", path}, &stdout, &stderr)).To(Equal(0))
		Expect(stderr.String()).To(ContainSubstring("Warning"))

		data, err := os.ReadFile("ASCII_Art.txt")
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal("#\n"))
	})

	It("applies flags over the config file", func() {
		Expect(os.WriteFile("conf.yml", []byte("skip_x: 1\nskip_y: 1\noutput_dir: art\n"), 0644)).To(Succeed())
		path := writePNG("gray.png", image.NewGray(image.Rect(0, 0, 4, 8)))

		code := run([]string{"asciiart", "--config", "conf.yml", "--skip-y", "4", "--invert", "--preview", "art.png", path}, &stdout, &stderr)
		Expect(code).To(Equal(0), stderr.String())

		data, err := os.ReadFile(filepath.Join("art", "ASCII_Art.txt"))
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal("   \n   \n"))

		_, err = os.Stat("art.png")
		Expect(err).NotTo(HaveOccurred())
	})

	It("rejects invalid skip factors", func() {
		path := writePNG("gray.png", image.NewGray(image.Rect(0, 0, 4, 8)))
		Expect(run([]string{"asciiart", "--skip-x", "0", path}, &stdout, &stderr)).To(Equal(1))
		Expect(stderr.String()).To(ContainSubstring("skip factors must be positive"))
	})

	It("can run again after a usage error", func() {
		Expect(run([]string{"asciiart"}, &stdout, &stderr)).To(Equal(1))
		path := writePNG("gray.png", image.NewGray(image.Rect(0, 0, 4, 8)))
		Expect(run([]string{"asciiart", path}, &stdout, &stderr)).To(Equal(0))
	})
})

// flags fakes the flags of a parsed command line.
type flags map[string]interface{}

func (f flags) IsSet(name string) bool {
	_, ok := f[name]
	return ok
}

func (f flags) String(name string) string {
	s, _ := f[name].(string)
	return s
}

func (f flags) Int(name string) int {
	n, _ := f[name].(int)
	return n
}

func (f flags) Float64(name string) float64 {
	v, _ := f[name].(float64)
	return v
}

func (f flags) Bool(name string) bool {
	b, _ := f[name].(bool)
	return b
}

var _ = Describe("configure", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "asciiart-configure")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(dir)
	})

	writeConfig := func(body string) string {
		path := filepath.Join(dir, "conf.yml")
		Expect(os.WriteFile(path, []byte(body), 0644)).To(Succeed())
		return path
	}

	It("defaults the sigmoid midpoint to mid gray", func() {
		cfg, err := configure(flags{})
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Adjust.SigmoidMidpoint).To(Equal(0.5))
		Expect(cfg.Adjust.SigmoidFactor).To(BeZero())
	})

	It("keeps the configured midpoint when only the factor flag is set", func() {
		path := writeConfig("adjust:\n  sigmoid_midpoint: 0.3\n  sigmoid_factor: 2\n")
		cfg, err := configure(flags{"config": path, "sigmoid-factor": 5.0})
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Adjust.SigmoidMidpoint).To(Equal(0.3))
		Expect(cfg.Adjust.SigmoidFactor).To(Equal(5.0))
	})

	It("keeps the configured factor when only the midpoint flag is set", func() {
		path := writeConfig("adjust:\n  sigmoid_midpoint: 0.3\n  sigmoid_factor: 2\n")
		cfg, err := configure(flags{"config": path, "sigmoid-midpoint": 0.7})
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Adjust.SigmoidMidpoint).To(Equal(0.7))
		Expect(cfg.Adjust.SigmoidFactor).To(Equal(2.0))
	})

	It("leaves file values alone for flags that are not set", func() {
		path := writeConfig("skip_x: 2\nadjust:\n  width: 40\n")
		cfg, err := configure(flags{"config": path, "skip-y": 3})
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.SkipX).To(Equal(2))
		Expect(cfg.SkipY).To(Equal(3))
		Expect(cfg.Adjust.Width).To(Equal(uint(40)))
	})
})
