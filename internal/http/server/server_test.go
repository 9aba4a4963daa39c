package server_test

import (
	"fmt"
	"net"
	"net/http"

	"unifarm/internal/http/server"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

func freePort() string {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	Expect(err).NotTo(HaveOccurred())
	defer l.Close()
	return fmt.Sprint(l.Addr().(*net.TCPAddr).Port)
}

var _ = Describe("HTTPServer", func() {
	It("should serve until shut down", func() {
		port := freePort()
		srv := server.NewHTTP(zap.NewNop().Sugar(), http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}), port)

		errChan := srv.Run()

		Eventually(func() (int, error) {
			resp, err := http.Get("http://127.0.0.1:" + port + "/healthz")
			if err != nil {
				return 0, err
			}
			defer resp.Body.Close()
			return resp.StatusCode, nil
		}).Should(Equal(http.StatusNoContent))

		Expect(srv.Shutdown()).To(Succeed())
		Eventually(errChan).Should(Receive(Equal(http.ErrServerClosed)))
	})
})
