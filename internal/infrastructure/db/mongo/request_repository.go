package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/corpops/travel-desk/internal/core/domain"
)

const requestsCollection = "travel_requests"

// RequestRepository stores travel requests in the travel_requests collection.
type RequestRepository struct {
	coll *mongo.Collection
}

func NewRequestRepository(db *mongo.Database) *RequestRepository {
	return &RequestRepository{coll: db.Collection(requestsCollection)}
}

type mongoTravelRequest struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	RequesterID    string             `bson:"requester_id"`
	Destination    string             `bson:"destination"`
	StartDate      time.Time          `bson:"start_date"`
	EndDate        time.Time          `bson:"end_date"`
	EstimatedCost  float64            `bson:"estimated_cost"`
	Reason         string             `bson:"reason"`
	Status         string             `bson:"status"`
	SubmittedOn    time.Time          `bson:"submitted_on"`
	ManagerComment string             `bson:"manager_comment,omitempty"`
}

func (r *RequestRepository) Create(ctx context.Context, req *domain.TravelRequest) (*domain.TravelRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoTravelRequest{
		RequesterID:    req.RequesterID,
		Destination:    req.Destination,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		EstimatedCost:  req.EstimatedCost,
		Reason:         req.Reason,
		Status:         string(req.Status),
		SubmittedOn:    req.SubmittedOn,
		ManagerComment: req.ManagerComment,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert travel request: %w", err)
	}

	created := *req
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *RequestRepository) FindByID(ctx context.Context, id string) (*domain.TravelRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRequestNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mr mongoTravelRequest
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mr); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("find travel request: %w", err)
	}
	return mr.toDomain(), nil
}

func (r *RequestRepository) ListByRequester(ctx context.Context, requesterID string, status domain.RequestStatus) ([]domain.TravelRequest, error) {
	filter := bson.M{"requester_id": requesterID}
	if status != "" {
		filter["status"] = string(status)
	}
	return r.list(ctx, filter)
}

func (r *RequestRepository) ListAll(ctx context.Context) ([]domain.TravelRequest, error) {
	return r.list(ctx, bson.M{})
}

func (r *RequestRepository) list(ctx context.Context, filter bson.M) ([]domain.TravelRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "submitted_on", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list travel requests: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.TravelRequest
	for cur.Next(ctx) {
		var mr mongoTravelRequest
		if err := cur.Decode(&mr); err != nil {
			return nil, fmt.Errorf("decode travel request: %w", err)
		}
		out = append(out, *mr.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list travel requests: %w", err)
	}
	return out, nil
}

// UpdateDecision overwrites status and manager comment. No version check:
// concurrent decisions are resolved by last write wins.
func (r *RequestRepository) UpdateDecision(ctx context.Context, id string, status domain.RequestStatus, comment string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrRequestNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"status":          string(status),
		"manager_comment": comment,
	}})
	if err != nil {
		return fmt.Errorf("update decision: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

func (r *RequestRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.coll.CountDocuments(ctx, bson.M{})
}

// EnsureIndexes creates the indexes backing the list views.
func (r *RequestRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "requester_id", Value: 1}, {Key: "submitted_on", Value: -1}}},
		{Keys: bson.D{{Key: "submitted_on", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (mr mongoTravelRequest) toDomain() *domain.TravelRequest {
	return &domain.TravelRequest{
		ID:             mr.ID.Hex(),
		RequesterID:    mr.RequesterID,
		Destination:    mr.Destination,
		StartDate:      mr.StartDate,
		EndDate:        mr.EndDate,
		EstimatedCost:  mr.EstimatedCost,
		Reason:         mr.Reason,
		Status:         domain.RequestStatus(mr.Status),
		SubmittedOn:    mr.SubmittedOn,
		ManagerComment: mr.ManagerComment,
	}
}
