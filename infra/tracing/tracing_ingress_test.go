package tracing

import (
	"houseprojects/testinfra"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/mocktracer"
)

func TestTracingIngress(t *testing.T) {
	RegisterTestingT(t)

	tracer := mocktracer.New()
	opentracing.SetGlobalTracer(tracer)
	defer opentracing.SetGlobalTracer(opentracing.NoopTracer{})

	router := gin.New()
	router.Use(TracingIngress())
	router.GET("/projects/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/broken", func(c *gin.Context) {
		c.Status(http.StatusInternalServerError)
	})

	t.Run("new root trace named by route", func(t *testing.T) {
		tracer.Reset()

		req := httptest.NewRequest(http.MethodGet, "/projects/42", nil)
		status, _, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))

		spans := tracer.FinishedSpans()
		Expect(len(spans)).To(Equal(1))
		s := spans[0]
		Expect(s.OperationName).To(Equal("GET /projects/:id"))
		Expect(s.ParentID).To(Equal(0))
		Expect(time.Since(s.StartTime) < time.Second).To(BeTrue())
		Expect(time.Since(s.FinishTime) < time.Second).To(BeTrue())
		Expect(s.SpanContext.SpanID).ToNot(BeZero())
		Expect(s.Tag("http.method")).To(Equal("GET"))
		Expect(s.Tag("http.url")).To(Equal("/projects/42"))
		Expect(s.Tag("http.status_code")).To(Equal(uint16(http.StatusOK)))
		Expect(s.Tag("error")).To(BeNil())
	})

	t.Run("child trace", func(t *testing.T) {
		tracer.Reset()

		clientSpan := tracer.StartSpan("client")

		req := httptest.NewRequest(http.MethodGet, "/projects/42", nil)
		Expect(tracer.Inject(clientSpan.Context(), opentracing.HTTPHeaders, opentracing.HTTPHeadersCarrier(req.Header))).To(BeNil())
		status, _, _ := testinfra.ExecuteRequest(req, router)

		clientSpan.Finish()

		Expect(status).To(Equal(http.StatusOK))

		spans := tracer.FinishedSpans()
		Expect(len(spans)).To(Equal(2))
		s0 := spans[1]
		Expect(s0.OperationName).To(Equal("client"))
		Expect(s0.ParentID).To(BeZero())
		Expect(s0.SpanContext.TraceID).ToNot(BeZero())

		s1 := spans[0]
		Expect(s1.OperationName).To(Equal("GET /projects/:id"))
		Expect(s1.ParentID).To(Equal(s0.SpanContext.SpanID))
		Expect(s1.SpanContext.TraceID).To(Equal(s0.SpanContext.TraceID))
	})

	t.Run("server failure marks span as error", func(t *testing.T) {
		tracer.Reset()

		req := httptest.NewRequest(http.MethodGet, "/broken", nil)
		status, _, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusInternalServerError))

		spans := tracer.FinishedSpans()
		Expect(len(spans)).To(Equal(1))
		Expect(spans[0].Tag("error")).To(Equal(true))
		Expect(spans[0].Tag("http.status_code")).To(Equal(uint16(http.StatusInternalServerError)))
	})

	t.Run("unmatched route keeps request path", func(t *testing.T) {
		tracer.Reset()

		req := httptest.NewRequest(http.MethodGet, "/nowhere", nil)
		status, _, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusNotFound))
		Expect(tracer.FinishedSpans()[0].OperationName).To(Equal("GET /nowhere"))
	})
}

func TestInitGlobalTracer(t *testing.T) {
	RegisterTestingT(t)
	defer opentracing.SetGlobalTracer(opentracing.NoopTracer{})

	t.Setenv("JAEGER_DISABLED", "true")
	closer, err := InitGlobalTracer("houseprojects")
	Expect(err).To(BeNil())
	Expect(closer.Close()).To(BeNil())
}
