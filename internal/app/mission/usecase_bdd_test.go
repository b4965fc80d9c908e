package mission

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"infernocorp/internal/app/session"
	"infernocorp/internal/domain/dice"
	"infernocorp/internal/domain/game"
	domain "infernocorp/internal/domain/mission"
	"infernocorp/internal/domain/roster"
	"infernocorp/internal/platform/random"
)

func newUseCase(seed int64) UseCase {
	seeds, err := random.NewSeeds(seed)
	Expect(err).NotTo(HaveOccurred())
	sess, err := session.New(game.DefaultCatalog(), session.Deps{Seeds: seeds})
	Expect(err).NotTo(HaveOccurred())
	sess.Create(context.Background())
	return UseCase{Session: sess}
}

var _ = Describe("Mission use case", func() {
	var (
		ctx context.Context
		uc  UseCase
	)

	BeforeEach(func() {
		ctx = context.Background()
		uc = newUseCase(42)
	})

	Describe("Select", func() {
		It("parks the team and previews the odds", func() {
			out, err := uc.Select(ctx, SelectRequest{PlanetID: " aurelia ", DaemonIDs: []string{"skulkvane", " murgatroyd"}})
			Expect(err).NotTo(HaveOccurred())
			Expect(out.State.Selection.Phase).To(Equal(game.PhaseTeamSelected))
			Expect(out.State.Selection.DaemonIDs).To(Equal([]string{"skulkvane", "murgatroyd"}))
			Expect(out.State.Selection.Preview).NotTo(BeNil())
			Expect(*out.State.Selection.Preview).To(Equal(out.Chance))
			Expect(out.Chance.Raw).To(BeNumerically(">=", domain.MinSuccessChance))
			Expect(out.Chance.Raw).To(BeNumerically("<=", domain.MaxSuccessChance))
		})

		It("rejects an empty team without touching state", func() {
			_, err := uc.Select(ctx, SelectRequest{PlanetID: "aurelia"})
			Expect(err).To(MatchError(game.ErrEmptyTeam))
			Expect(uc.Session.Snapshot().Selection.Phase).To(Equal(game.PhaseIdle))
		})
	})

	Describe("Execute", func() {
		Context("without a selection", func() {
			It("fails with no_mission_selected", func() {
				_, err := uc.Execute(ctx)
				Expect(err).To(HaveOccurred())
				Expect(game.Code(err)).To(Equal("no_mission_selected"))
			})
		})

		Context("with a selected team", func() {
			It("resolves once and returns to idle", func() {
				_, err := uc.Select(ctx, SelectRequest{PlanetID: "veritas", DaemonIDs: []string{"murgatroyd", "grizzlethorn"}})
				Expect(err).NotTo(HaveOccurred())

				out, err := uc.Execute(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(out.Result.Casualties).To(HaveLen(2))
				Expect(out.Result.Narrative).NotTo(BeEmpty())
				Expect(out.State.Selection.Phase).To(Equal(game.PhaseIdle))

				_, err = uc.Execute(ctx)
				Expect(err).To(MatchError(game.ErrNoMissionSelected))
			})

			It("retires every non-survivor", func() {
				for seed := int64(1); seed <= 30; seed++ {
					u := newUseCase(seed)
					_, err := u.Select(ctx, SelectRequest{PlanetID: "bastion", DaemonIDs: []string{"grizzlethorn", "murgatroyd", "skulkvane"}})
					Expect(err).NotTo(HaveOccurred())
					out, err := u.Execute(ctx)
					Expect(err).NotTo(HaveOccurred())
					for _, c := range out.Result.Casualties {
						if c.Survived {
							continue
						}
						d, ok := u.Session.Snapshot().Roster.Daemon(c.DaemonID)
						Expect(ok).To(BeTrue())
						Expect(d.Active).To(BeFalse())
						Expect(d.LifespanDays).To(BeZero())
					}
				}
			})

			It("wears held equipment whatever the outcome", func() {
				seen := map[bool]bool{}
				for seed := int64(1); seed <= 60; seed++ {
					u := newUseCase(seed)
					_, err := u.Select(ctx, SelectRequest{PlanetID: "bastion", DaemonIDs: []string{"grizzlethorn"}})
					Expect(err).NotTo(HaveOccurred())
					out, err := u.Execute(ctx)
					Expect(err).NotTo(HaveOccurred())
					seen[out.Result.Success] = true

					Expect(out.Result.Wear).To(HaveLen(1))
					wear := out.Result.Wear[0].Amount
					Expect(wear).To(BeNumerically(">=", 5))
					Expect(wear).To(BeNumerically("<", 15))

					expected := 80 - wear
					if c := out.Result.Casualties[0]; c.Retired && c.LegacyRecovery {
						expected = roster.MaxStat
					}
					item, ok := u.Session.Snapshot().Roster.Item("brimstone-cleaver")
					Expect(ok).To(BeTrue())
					Expect(item.Durability).To(Equal(expected))
				}
				Expect(seen).To(HaveKey(true))
				Expect(seen).To(HaveKey(false))
			})

			It("replays identically from the same seed", func() {
				run := func() domain.Result {
					u := newUseCase(7)
					_, err := u.Select(ctx, SelectRequest{PlanetID: "seraphine", DaemonIDs: []string{"grizzlethorn", "murgatroyd", "skulkvane"}})
					Expect(err).NotTo(HaveOccurred())
					out, err := u.Execute(ctx)
					Expect(err).NotTo(HaveOccurred())
					return out.Result
				}
				Expect(run()).To(Equal(run()))
			})
		})

		Context("on an already conquered planet", func() {
			It("never unconquers it", func() {
				for seed := int64(1); seed <= 10; seed++ {
					u := newUseCase(seed)
					_, err := u.Session.Mutate(ctx, "seed_conquest", func(next *game.State, _ dice.Rand) error {
						p, _ := next.Roster.Planet("bastion")
						p.Conquered = true
						return nil
					})
					Expect(err).NotTo(HaveOccurred())
					_, err = u.Select(ctx, SelectRequest{PlanetID: "bastion", DaemonIDs: []string{"grizzlethorn"}})
					Expect(err).NotTo(HaveOccurred())
					out, err := u.Execute(ctx)
					Expect(err).NotTo(HaveOccurred())
					Expect(out.Result.Conquered).To(BeFalse())

					p, _ := u.Session.Snapshot().Roster.Planet("bastion")
					Expect(p.Conquered).To(BeTrue())
				}
			})
		})
	})
})
