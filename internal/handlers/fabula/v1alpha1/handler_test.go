package v1alpha1_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/reflection/grpc_reflection_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/fabula-api/internal/engine"
	"github.com/KirkDiggler/fabula-api/internal/engine/combo"
	"github.com/KirkDiggler/fabula-api/internal/entities/fabula"
	"github.com/KirkDiggler/fabula-api/internal/errors"
	"github.com/KirkDiggler/fabula-api/internal/handlers/fabula/v1alpha1"
	"github.com/KirkDiggler/fabula-api/internal/orchestrators/action"
	actionmock "github.com/KirkDiggler/fabula-api/internal/orchestrators/action/mock"
	"github.com/KirkDiggler/fabula-api/internal/presenter"
	dicesession "github.com/KirkDiggler/fabula-api/internal/repositories/dice_session"
	"github.com/KirkDiggler/fabula-api/internal/sink"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	ctx        context.Context
	mockAction *actionmock.MockService
	handler    *v1alpha1.Handler
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.mockAction = actionmock.NewMockService(s.ctrl)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{ActionService: s.mockAction})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) request(fields map[string]any) *structpb.Struct {
	req, err := structpb.NewStruct(fields)
	s.Require().NoError(err)
	return req
}

func (s *HandlerTestSuite) TestNewHandlerRequiresService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Error(err)
}

func (s *HandlerTestSuite) TestRollItem() {
	sword := &fabula.Item{ID: "sword"}
	s.mockAction.EXPECT().
		RollItem(s.ctx, &action.RollItemInput{ActorID: "act_1", ItemID: "sword", RollMode: sink.RollModeGM}).
		Return(&action.RollItemOutput{
			Message: &sink.Message{
				ID:       "msg_1",
				ActorID:  "act_1",
				RollMode: sink.RollModeGM,
				Payload:  &presenter.Payload{Label: "[weapon] Bronze Sword", Content: "6 + 6"},
			},
			Outcomes: []*engine.WeaponOutcome{{
				Weapon: sword,
				Outcome: &engine.ActionOutcome{
					ItemID: "sword", DiceFaces: [2]int{6, 6}, AccuracyTotal: 13, HighRoll: 6,
					IsCritical: true, HasDamage: true, DamageTotal: 11, DamageType: "physical",
				},
			}},
		}, nil)

	resp, err := s.handler.RollItem(s.ctx, s.request(map[string]any{
		"actor_id":  "act_1",
		"item_id":   "sword",
		"roll_mode": "gm",
	}))
	s.Require().NoError(err)

	got := resp.AsMap()
	msg := got["message"].(map[string]any)
	s.Equal("[weapon] Bronze Sword", msg["label"])
	s.Equal("6 + 6", msg["content"])
	s.Equal("gm", msg["roll_mode"])

	outcomes := got["outcomes"].([]any)
	s.Require().Len(outcomes, 1)
	outcome := outcomes[0].(map[string]any)
	s.Equal([]any{float64(6), float64(6)}, outcome["dice"])
	s.Equal(float64(13), outcome["accuracy"])
	s.Equal(true, outcome["critical"])
	s.Equal(float64(11), outcome["damage"])
	s.Equal("sword", outcome["weapon_id"])
}

func (s *HandlerTestSuite) TestRollItemAlchemy() {
	s.mockAction.EXPECT().
		RollItem(s.ctx, gomock.Any()).
		Return(&action.RollItemOutput{
			Message: &sink.Message{
				ID:       "msg_1",
				RollMode: sink.RollModePublic,
				Payload:  &presenter.Payload{Label: "[miscAbility] Alchemy", Contents: []string{"a", "b"}},
			},
			Alchemy: &engine.AlchemyRollResult{
				Faces:   []int{6, 14},
				Level:   5,
				Entries: []combo.Entry{{Combo: "6+Any", Effect: "x"}},
			},
		}, nil)

	resp, err := s.handler.RollItem(s.ctx, s.request(map[string]any{"actor_id": "act_1", "item_id": "alc"}))
	s.Require().NoError(err)

	got := resp.AsMap()
	s.Equal([]any{"a", "b"}, got["message"].(map[string]any)["contents"])
	alchemy := got["alchemy"].(map[string]any)
	s.Equal([]any{float64(6), float64(14)}, alchemy["faces"])
	s.Len(alchemy["entries"].([]any), 1)
	s.NotContains(got, "outcomes")
}

func (s *HandlerTestSuite) TestRollItemValidation() {
	_, err := s.handler.RollItem(s.ctx, s.request(map[string]any{"item_id": "sword"}))
	s.Equal(codes.InvalidArgument, status.Code(err))

	_, err = s.handler.RollItem(s.ctx, s.request(map[string]any{"actor_id": "act_1"}))
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestRollItemServiceError() {
	s.mockAction.EXPECT().
		RollItem(s.ctx, gomock.Any()).
		Return(nil, errors.FailedPrecondition("actor has no might die"))

	_, err := s.handler.RollItem(s.ctx, s.request(map[string]any{"actor_id": "act_1", "item_id": "sword"}))
	s.Equal(codes.FailedPrecondition, status.Code(err))
	s.True(errors.IsFailedPrecondition(errors.FromGRPCError(err)))
}

func (s *HandlerTestSuite) TestGetRollLog() {
	rolledAt := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)
	s.mockAction.EXPECT().
		GetRollLog(s.ctx, &action.GetRollLogInput{ActorID: "act_1", Context: "scene_2"}).
		Return(&action.GetRollLogOutput{Session: &dicesession.DiceSession{
			EntityID:  "act_1",
			Context:   "scene_2",
			ExpiresAt: rolledAt.Add(15 * time.Minute),
			Rolls: []dicesession.DiceRoll{{
				RollID: "roll_1", ItemID: "sword", Kind: dicesession.RollKindAction,
				Dice: []int{5, 3}, Total: 9, RolledAt: rolledAt,
			}},
		}}, nil)

	resp, err := s.handler.GetRollLog(s.ctx, s.request(map[string]any{"actor_id": "act_1", "context": "scene_2"}))
	s.Require().NoError(err)

	got := resp.AsMap()
	s.Equal("2026-03-14T18:15:00Z", got["expires_at"])
	rolls := got["rolls"].([]any)
	s.Require().Len(rolls, 1)
	roll := rolls[0].(map[string]any)
	s.Equal("roll_1", roll["roll_id"])
	s.Equal(float64(9), roll["total"])
	s.Equal("2026-03-14T18:00:00Z", roll["rolled_at"])
}

func (s *HandlerTestSuite) TestGetRollLogNotFound() {
	s.mockAction.EXPECT().
		GetRollLog(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("no rolls logged"))

	_, err := s.handler.GetRollLog(s.ctx, s.request(map[string]any{"actor_id": "act_1"}))
	s.Equal(codes.NotFound, status.Code(err))
}

func (s *HandlerTestSuite) TestClearRollLog() {
	s.mockAction.EXPECT().
		ClearRollLog(s.ctx, &action.ClearRollLogInput{ActorID: "act_1"}).
		Return(&action.ClearRollLogOutput{RollsDeleted: 3}, nil)

	resp, err := s.handler.ClearRollLog(s.ctx, s.request(map[string]any{"actor_id": "act_1"}))
	s.Require().NoError(err)
	s.Equal(float64(3), resp.AsMap()["rolls_deleted"])
}

func (s *HandlerTestSuite) TestGetWeaponDisplay() {
	s.mockAction.EXPECT().
		GetWeaponDisplay(s.ctx, &action.GetWeaponDisplayInput{ActorID: "act_1", ItemID: "sword"}).
		Return(&action.GetWeaponDisplayOutput{Display: &presenter.WeaponDisplay{
			Attack:  "【DEX + INS】 +1",
			Damage:  "【HR + 5】 physical",
			Quality: "One-Handed ⬩ sword ⬩ No Quality.",
		}}, nil)

	resp, err := s.handler.GetWeaponDisplay(s.ctx, s.request(map[string]any{"actor_id": "act_1", "item_id": "sword"}))
	s.Require().NoError(err)
	s.Equal("【DEX + INS】 +1", resp.AsMap()["attack"])
}

func (s *HandlerTestSuite) TestListActors() {
	s.mockAction.EXPECT().
		ListActors(s.ctx, &action.ListActorsInput{}).
		Return(&action.ListActorsOutput{Actors: []*fabula.Actor{{
			ID:    "mira",
			Name:  "Mira",
			Level: 22,
			Items: []*fabula.Item{{ID: "rope", Name: "Rope", Kind: fabula.KindOther}},
		}}}, nil)

	resp, err := s.handler.ListActors(s.ctx, s.request(map[string]any{}))
	s.Require().NoError(err)

	actors := resp.AsMap()["actors"].([]any)
	s.Require().Len(actors, 1)
	mira := actors[0].(map[string]any)
	s.Equal("mira", mira["id"])
	s.Equal(float64(22), mira["level"])
	items := mira["items"].([]any)
	s.Require().Len(items, 1)
	s.Equal("[other] Rope", items[0].(map[string]any)["label"])
}

func (s *HandlerTestSuite) TestDescriptorMatchesService() {
	svc := v1alpha1.FileDescriptor.Services().ByName("ActionService")
	s.Require().NotNil(svc)
	s.Equal(v1alpha1.ServiceName, string(svc.FullName()))
	s.Equal(len(v1alpha1.ActionServiceDesc.Methods), svc.Methods().Len())

	for _, m := range v1alpha1.ActionServiceDesc.Methods {
		md := svc.Methods().ByName(protoreflect.Name(m.MethodName))
		s.Require().NotNil(md, m.MethodName)
		s.Equal("google.protobuf.Struct", string(md.Input().FullName()))
		s.Equal("google.protobuf.Struct", string(md.Output().FullName()))
	}
}

func (s *HandlerTestSuite) dial(srv *grpc.Server) *grpc.ClientConn {
	lis := bufconn.Listen(1 << 20)
	go func() {
		_ = srv.Serve(lis)
	}()
	s.T().Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.T().Cleanup(func() {
		_ = conn.Close()
	})
	return conn
}

func (s *HandlerTestSuite) TestOverTheWire() {
	srv := grpc.NewServer()
	v1alpha1.RegisterActionServiceServer(srv, s.handler)
	conn := s.dial(srv)

	s.mockAction.EXPECT().
		ClearRollLog(gomock.Any(), &action.ClearRollLogInput{ActorID: "act_1"}).
		Return(&action.ClearRollLogOutput{RollsDeleted: 2}, nil)

	client := v1alpha1.NewActionServiceClient(conn)
	resp, err := client.ClearRollLog(s.ctx, s.request(map[string]any{"actor_id": "act_1"}))
	s.Require().NoError(err)
	s.Equal(float64(2), resp.AsMap()["rolls_deleted"])

	_, err = client.RollItem(s.ctx, s.request(map[string]any{}))
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestReflectionResolvesService() {
	srv := grpc.NewServer()
	v1alpha1.RegisterActionServiceServer(srv, s.handler)
	reflection.Register(srv)
	conn := s.dial(srv)

	ctx, cancel := context.WithTimeout(s.ctx, 5*time.Second)
	defer cancel()

	stream, err := grpc_reflection_v1.NewServerReflectionClient(conn).ServerReflectionInfo(ctx)
	s.Require().NoError(err)
	s.Require().NoError(stream.Send(&grpc_reflection_v1.ServerReflectionRequest{
		MessageRequest: &grpc_reflection_v1.ServerReflectionRequest_FileContainingSymbol{
			FileContainingSymbol: v1alpha1.ServiceName,
		},
	}))

	resp, err := stream.Recv()
	s.Require().NoError(err)
	s.Nil(resp.GetErrorResponse())

	var found *descriptorpb.FileDescriptorProto
	for _, raw := range resp.GetFileDescriptorResponse().GetFileDescriptorProto() {
		fdp := &descriptorpb.FileDescriptorProto{}
		s.Require().NoError(proto.Unmarshal(raw, fdp))
		if fdp.GetName() == v1alpha1.ProtoFile {
			found = fdp
		}
	}
	s.Require().NotNil(found)
	s.Require().Len(found.GetService(), 1)

	names := make([]string, 0, len(found.GetService()[0].GetMethod()))
	for _, m := range found.GetService()[0].GetMethod() {
		names = append(names, m.GetName())
	}
	s.ElementsMatch([]string{"RollItem", "GetRollLog", "ClearRollLog", "GetWeaponDisplay", "ListActors"}, names)
	s.Require().NoError(stream.CloseSend())
}
