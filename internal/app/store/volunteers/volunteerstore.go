package volunteerstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/volunteerhub/internal/app/system/normalize"
	"github.com/dalemusser/volunteerhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultStatus is assigned when a volunteer is created without one.
const DefaultStatus = "Activo"

var (
	// ErrNotFound is returned when a volunteer id does not exist.
	ErrNotFound      = errors.New("volunteer not found")
	errNameRequired  = errors.New("full_name is required")
	errEmailRequired = errors.New("email is required")
)

// Store provides access to the volunteers collection and its skill and
// campaign link collections.
type Store struct {
	db        *mongo.Database
	c         *mongo.Collection
	skills    *mongo.Collection
	campaigns *mongo.Collection
	volSkills *mongo.Collection
	volCamps  *mongo.Collection
}

// New creates a volunteer store.
func New(db *mongo.Database) *Store {
	return &Store{
		db:        db,
		c:         db.Collection("volunteers"),
		skills:    db.Collection("skills"),
		campaigns: db.Collection("campaigns"),
		volSkills: db.Collection("volunteer_skills"),
		volCamps:  db.Collection("volunteer_campaigns"),
	}
}

// Create inserts a new volunteer after normalizing fields, then replaces its
// relation links with the supplied skill and campaign names.
func (s *Store) Create(ctx context.Context, v models.Volunteer, skillNames, campaignNames []string) (models.Volunteer, error) {
	v.ID = primitive.NewObjectID()
	v.FullName = normalize.Name(v.FullName)
	v.FullNameCI = text.Fold(v.FullName)
	v.Email = normalize.Email(v.Email)
	if v.FullName == "" {
		return models.Volunteer{}, errNameRequired
	}
	if v.Email == "" {
		return models.Volunteer{}, errEmailRequired
	}
	if v.Status == "" {
		v.Status = DefaultStatus
	}

	now := time.Now().UTC()
	v.CreatedAt = now
	v.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, v); err != nil {
		return models.Volunteer{}, err
	}

	if len(skillNames) > 0 {
		if err := s.ReplaceSkills(ctx, v.ID, skillNames); err != nil {
			return models.Volunteer{}, err
		}
	}
	if len(campaignNames) > 0 {
		if err := s.ReplaceCampaigns(ctx, v.ID, campaignNames); err != nil {
			return models.Volunteer{}, err
		}
	}

	return s.Get(ctx, v.ID)
}

// Get loads a volunteer by id with its relations resolved.
func (s *Store) Get(ctx context.Context, id primitive.ObjectID) (models.Volunteer, error) {
	var v models.Volunteer
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&v); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Volunteer{}, ErrNotFound
		}
		return models.Volunteer{}, err
	}
	vols := []models.Volunteer{v}
	if err := s.ResolveRelations(ctx, vols); err != nil {
		return models.Volunteer{}, err
	}
	return vols[0], nil
}

// ListOptions narrows List. Zero values are not applied.
type ListOptions struct {
	Skip   int64
	Limit  int64
	Search string   // substring match on name or email, case-insensitive
	Skills []string // ANY-match: at least one named skill present
}

// List returns volunteers with relations resolved. The skills option is a
// residual filter: it runs in memory after the store query because the
// store cannot express the many-to-many membership test.
func (s *Store) List(ctx context.Context, opt ListOptions) ([]models.Volunteer, error) {
	filter := bson.M{}
	if opt.Search != "" {
		filter["$or"] = []bson.M{
			{"full_name_ci": bson.M{"$regex": text.Fold(opt.Search)}},
			{"email": bson.M{"$regex": normalize.Email(opt.Search)}},
		}
	}

	find := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	if opt.Skip > 0 {
		find.SetSkip(opt.Skip)
	}
	if opt.Limit > 0 {
		find.SetLimit(opt.Limit)
	}

	vols, err := s.find(ctx, filter, find)
	if err != nil {
		return nil, err
	}
	if err := s.ResolveRelations(ctx, vols); err != nil {
		return nil, err
	}

	if len(opt.Skills) == 0 {
		return vols, nil
	}
	filtered := make([]models.Volunteer, 0, len(vols))
	for _, v := range vols {
		if hasAnySkill(v, opt.Skills) {
			filtered = append(filtered, v)
		}
	}
	return filtered, nil
}

// FindFiltered returns volunteers matching a raw store filter, relations
// resolved, in creation order. Used by the segment filter engine, which
// applies its own residual predicates afterward.
func (s *Store) FindFiltered(ctx context.Context, filter bson.M) ([]models.Volunteer, error) {
	vols, err := s.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	if err := s.ResolveRelations(ctx, vols); err != nil {
		return nil, err
	}
	return vols, nil
}

func (s *Store) find(ctx context.Context, filter bson.M, find *options.FindOptions) ([]models.Volunteer, error) {
	cur, err := s.c.Find(ctx, filter, find)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var vols []models.Volunteer
	if err := cur.All(ctx, &vols); err != nil {
		return nil, err
	}
	return vols, nil
}

// Update holds the fields that can change on a volunteer. Nil pointers are
// not touched; nil relation slices leave links alone while empty non-nil
// slices clear them.
type Update struct {
	FullName      *string
	Email         *string
	Phone         *string
	Region        *string
	City          *string
	Availability  *string
	VolunteerType *string
	Status        *string
	Notes         *string
	Skills        []string
	Campaigns     []string
	// SkillsSet / CampaignsSet distinguish "clear the links" from "leave alone".
	SkillsSet    bool
	CampaignsSet bool
}

// ApplyUpdate patches a volunteer and, when relation lists are supplied,
// fully replaces the corresponding links. Returns the updated record with
// relations resolved.
func (s *Store) ApplyUpdate(ctx context.Context, id primitive.ObjectID, upd Update) (models.Volunteer, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.FullName != nil {
		name := normalize.Name(*upd.FullName)
		set["full_name"] = name
		set["full_name_ci"] = text.Fold(name)
	}
	if upd.Email != nil {
		set["email"] = normalize.Email(*upd.Email)
	}
	if upd.Phone != nil {
		set["phone"] = *upd.Phone
	}
	if upd.Region != nil {
		set["region"] = *upd.Region
	}
	if upd.City != nil {
		set["city"] = *upd.City
	}
	if upd.Availability != nil {
		set["availability"] = *upd.Availability
	}
	if upd.VolunteerType != nil {
		set["volunteer_type"] = *upd.VolunteerType
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.Notes != nil {
		set["notes"] = *upd.Notes
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return models.Volunteer{}, err
	}
	if res.MatchedCount == 0 {
		return models.Volunteer{}, ErrNotFound
	}

	if upd.SkillsSet {
		if err := s.ReplaceSkills(ctx, id, upd.Skills); err != nil {
			return models.Volunteer{}, err
		}
	}
	if upd.CampaignsSet {
		if err := s.ReplaceCampaigns(ctx, id, upd.Campaigns); err != nil {
			return models.Volunteer{}, err
		}
	}

	return s.Get(ctx, id)
}

// Delete removes a volunteer and its relation links. Returns the number of
// volunteer documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	if res.DeletedCount > 0 {
		_, _ = s.volSkills.DeleteMany(ctx, bson.M{"volunteer_id": id})
		_, _ = s.volCamps.DeleteMany(ctx, bson.M{"volunteer_id": id})
	}
	return res.DeletedCount, nil
}

// ReplaceSkills clears a volunteer's skill links and inserts fresh ones for
// the named skills, creating any skill that does not exist yet. The link set
// always reflects the last call; nothing is merged.
func (s *Store) ReplaceSkills(ctx context.Context, volunteerID primitive.ObjectID, names []string) error {
	if _, err := s.volSkills.DeleteMany(ctx, bson.M{"volunteer_id": volunteerID}); err != nil {
		return err
	}
	if len(names) == 0 {
		return nil
	}

	ids, err := s.ensureSkills(ctx, names)
	if err != nil {
		return err
	}

	links := make([]any, 0, len(ids))
	for _, skillID := range ids {
		links = append(links, models.VolunteerSkill{
			ID:          primitive.NewObjectID(),
			VolunteerID: volunteerID,
			SkillID:     skillID,
		})
	}
	_, err = s.volSkills.InsertMany(ctx, links)
	return err
}

// ReplaceCampaigns clears a volunteer's campaign links and inserts fresh
// ones, creating missing campaigns with the current year.
func (s *Store) ReplaceCampaigns(ctx context.Context, volunteerID primitive.ObjectID, names []string) error {
	if _, err := s.volCamps.DeleteMany(ctx, bson.M{"volunteer_id": volunteerID}); err != nil {
		return err
	}
	if len(names) == 0 {
		return nil
	}

	ids, err := s.ensureCampaigns(ctx, names)
	if err != nil {
		return err
	}

	links := make([]any, 0, len(ids))
	for _, campaignID := range ids {
		links = append(links, models.VolunteerCampaign{
			ID:          primitive.NewObjectID(),
			VolunteerID: volunteerID,
			CampaignID:  campaignID,
		})
	}
	_, err = s.volCamps.InsertMany(ctx, links)
	return err
}

// ensureSkills returns the ids for the named skills, creating any that do
// not exist. Matching is by exact name only.
func (s *Store) ensureSkills(ctx context.Context, names []string) ([]primitive.ObjectID, error) {
	existing := map[string]primitive.ObjectID{}
	cur, err := s.skills.Find(ctx, bson.M{"name": bson.M{"$in": names}})
	if err != nil {
		return nil, err
	}
	var found []models.Skill
	if err := cur.All(ctx, &found); err != nil {
		return nil, err
	}
	for _, sk := range found {
		existing[sk.Name] = sk.ID
	}

	ids := make([]primitive.ObjectID, 0, len(names))
	for _, name := range names {
		id, ok := existing[name]
		if !ok {
			sk := models.Skill{
				ID:        primitive.NewObjectID(),
				Name:      name,
				CreatedAt: time.Now().UTC(),
			}
			if _, err := s.skills.InsertOne(ctx, sk); err != nil {
				if !wafflemongo.IsDup(err) {
					return nil, err
				}
				// Lost a create race; read the winner.
				var winner models.Skill
				if err := s.skills.FindOne(ctx, bson.M{"name": name}).Decode(&winner); err != nil {
					return nil, err
				}
				sk.ID = winner.ID
			}
			id = sk.ID
			existing[name] = id
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ensureCampaigns mirrors ensureSkills for campaigns; new campaigns get the
// current year.
func (s *Store) ensureCampaigns(ctx context.Context, names []string) ([]primitive.ObjectID, error) {
	existing := map[string]primitive.ObjectID{}
	cur, err := s.campaigns.Find(ctx, bson.M{"name": bson.M{"$in": names}})
	if err != nil {
		return nil, err
	}
	var found []models.Campaign
	if err := cur.All(ctx, &found); err != nil {
		return nil, err
	}
	for _, c := range found {
		existing[c.Name] = c.ID
	}

	ids := make([]primitive.ObjectID, 0, len(names))
	for _, name := range names {
		id, ok := existing[name]
		if !ok {
			camp := models.Campaign{
				ID:        primitive.NewObjectID(),
				Name:      name,
				Year:      time.Now().UTC().Year(),
				CreatedAt: time.Now().UTC(),
			}
			if _, err := s.campaigns.InsertOne(ctx, camp); err != nil {
				if !wafflemongo.IsDup(err) {
					return nil, err
				}
				var winner models.Campaign
				if err := s.campaigns.FindOne(ctx, bson.M{"name": name}).Decode(&winner); err != nil {
					return nil, err
				}
				camp.ID = winner.ID
			}
			id = camp.ID
			existing[name] = id
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ResolveRelations populates Skills and Campaigns on each volunteer with a
// batched lookup over the link collections.
func (s *Store) ResolveRelations(ctx context.Context, vols []models.Volunteer) error {
	if len(vols) == 0 {
		return nil
	}

	volIDs := make([]primitive.ObjectID, 0, len(vols))
	for i := range vols {
		volIDs = append(volIDs, vols[i].ID)
		vols[i].Skills = []models.Skill{}
		vols[i].Campaigns = []models.Campaign{}
	}

	skillsByVol, err := s.skillsFor(ctx, volIDs)
	if err != nil {
		return err
	}
	campsByVol, err := s.campaignsFor(ctx, volIDs)
	if err != nil {
		return err
	}

	for i := range vols {
		if sk, ok := skillsByVol[vols[i].ID]; ok {
			vols[i].Skills = sk
		}
		if cp, ok := campsByVol[vols[i].ID]; ok {
			vols[i].Campaigns = cp
		}
	}
	return nil
}

func (s *Store) skillsFor(ctx context.Context, volIDs []primitive.ObjectID) (map[primitive.ObjectID][]models.Skill, error) {
	cur, err := s.volSkills.Find(ctx, bson.M{"volunteer_id": bson.M{"$in": volIDs}})
	if err != nil {
		return nil, err
	}
	var links []models.VolunteerSkill
	if err := cur.All(ctx, &links); err != nil {
		return nil, err
	}

	skillIDSet := map[primitive.ObjectID]struct{}{}
	for _, l := range links {
		skillIDSet[l.SkillID] = struct{}{}
	}
	skillByID := map[primitive.ObjectID]models.Skill{}
	if len(skillIDSet) > 0 {
		ids := make([]primitive.ObjectID, 0, len(skillIDSet))
		for id := range skillIDSet {
			ids = append(ids, id)
		}
		scur, err := s.skills.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
		if err != nil {
			return nil, err
		}
		var all []models.Skill
		if err := scur.All(ctx, &all); err != nil {
			return nil, err
		}
		for _, sk := range all {
			skillByID[sk.ID] = sk
		}
	}

	out := map[primitive.ObjectID][]models.Skill{}
	for _, l := range links {
		if sk, ok := skillByID[l.SkillID]; ok {
			out[l.VolunteerID] = append(out[l.VolunteerID], sk)
		}
	}
	return out, nil
}

func (s *Store) campaignsFor(ctx context.Context, volIDs []primitive.ObjectID) (map[primitive.ObjectID][]models.Campaign, error) {
	cur, err := s.volCamps.Find(ctx, bson.M{"volunteer_id": bson.M{"$in": volIDs}})
	if err != nil {
		return nil, err
	}
	var links []models.VolunteerCampaign
	if err := cur.All(ctx, &links); err != nil {
		return nil, err
	}

	campIDSet := map[primitive.ObjectID]struct{}{}
	for _, l := range links {
		campIDSet[l.CampaignID] = struct{}{}
	}
	campByID := map[primitive.ObjectID]models.Campaign{}
	if len(campIDSet) > 0 {
		ids := make([]primitive.ObjectID, 0, len(campIDSet))
		for id := range campIDSet {
			ids = append(ids, id)
		}
		ccur, err := s.campaigns.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
		if err != nil {
			return nil, err
		}
		var all []models.Campaign
		if err := ccur.All(ctx, &all); err != nil {
			return nil, err
		}
		for _, c := range all {
			campByID[c.ID] = c
		}
	}

	out := map[primitive.ObjectID][]models.Campaign{}
	for _, l := range links {
		if c, ok := campByID[l.CampaignID]; ok {
			out[l.VolunteerID] = append(out[l.VolunteerID], c)
		}
	}
	return out, nil
}

func hasAnySkill(v models.Volunteer, names []string) bool {
	for _, want := range names {
		for _, sk := range v.Skills {
			if sk.Name == want {
				return true
			}
		}
	}
	return false
}
