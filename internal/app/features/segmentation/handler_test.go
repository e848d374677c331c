package segmentation_test

import (
	"encoding/json"
	"testing"

	"github.com/dalemusser/volunteerhub/internal/app/features/segmentation"
	"github.com/dalemusser/volunteerhub/internal/app/store/queries/volunteerfilter"
	segmentstore "github.com/dalemusser/volunteerhub/internal/app/store/segments"
	volunteerstore "github.com/dalemusser/volunteerhub/internal/app/store/volunteers"
	"github.com/dalemusser/volunteerhub/internal/domain/models"
	"github.com/dalemusser/volunteerhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newHandler(t *testing.T) (*segmentation.Handler, *volunteerstore.Store) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	vols := volunteerstore.New(db)
	h := segmentation.NewHandler(segmentstore.New(db), volunteerfilter.NewEngine(vols), zap.NewNop())
	return h, vols
}

func TestCreateCountsMatches(t *testing.T) {
	h, vols := newHandler(t)
	ctx := testutil.TestContext(t)

	if _, err := vols.Create(ctx, models.Volunteer{FullName: "Ana García", Email: "ana@example.com", Region: "Norte"}, nil, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := vols.Create(ctx, models.Volunteer{FullName: "Luis Pérez", Email: "luis@example.com", Region: "Sur"}, nil, nil); err != nil {
		t.Fatal(err)
	}

	body := `{"filters":{"region":"Norte"}}`
	rec := testutil.NewRecorder()
	h.HandleCreate(rec, testutil.NewJSONRequest("POST", "/segmentation", body))
	rec.AssertStatus(t, 201)

	var seg models.Segment
	if err := json.Unmarshal(rec.Body.Bytes(), &seg); err != nil {
		t.Fatal(err)
	}
	if seg.Count != 1 {
		t.Errorf("count = %d, want 1", seg.Count)
	}
	if seg.Filters.Region != "Norte" {
		t.Errorf("filters.region = %q", seg.Filters.Region)
	}
}

func TestCreateDropsUnknownFilterKeys(t *testing.T) {
	h, _ := newHandler(t)

	body := `{"filters":{"region":"Norte","$where":"sleep(1000)"}}`
	rec := testutil.NewRecorder()
	h.HandleCreate(rec, testutil.NewJSONRequest("POST", "/segmentation", body))
	rec.AssertStatus(t, 201)

	var seg models.Segment
	if err := json.Unmarshal(rec.Body.Bytes(), &seg); err != nil {
		t.Fatal(err)
	}
	if seg.Filters.Region != "Norte" {
		t.Errorf("filters.region = %q", seg.Filters.Region)
	}
}

func TestListAndGet(t *testing.T) {
	h, _ := newHandler(t)

	create := testutil.NewRecorder()
	h.HandleCreate(create, testutil.NewJSONRequest("POST", "/segmentation", `{"filters":{"region":"Norte"}}`))
	create.AssertStatus(t, 201)

	var seg models.Segment
	if err := json.Unmarshal(create.Body.Bytes(), &seg); err != nil {
		t.Fatal(err)
	}

	t.Run("list", func(t *testing.T) {
		rec := testutil.NewRecorder()
		h.HandleList(rec, testutil.NewRequest("GET", "/segmentation"))
		rec.AssertStatus(t, 200)
		rec.AssertContains(t, seg.ID.Hex())
	})

	t.Run("get", func(t *testing.T) {
		req := testutil.NewRequest("GET", "/segmentation/"+seg.ID.Hex())
		req = testutil.WithChiURLParam(req, "id", seg.ID.Hex())
		rec := testutil.NewRecorder()
		h.HandleGet(rec, req)
		rec.AssertStatus(t, 200)
		rec.AssertContains(t, `"region":"Norte"`)
	})

	t.Run("get unknown", func(t *testing.T) {
		id := primitive.NewObjectID().Hex()
		req := testutil.NewRequest("GET", "/segmentation/"+id)
		req = testutil.WithChiURLParam(req, "id", id)
		rec := testutil.NewRecorder()
		h.HandleGet(rec, req)
		rec.AssertStatus(t, 404)
		rec.AssertContains(t, "Segment not found")
	})
}
